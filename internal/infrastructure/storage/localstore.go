package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"gramseva/internal/shared/config"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// LocalStore writes uploaded attachments under a single directory. Stored
// names are prefixed with a UUID so concurrent uploads of the same filename
// never collide, and the original name is sanitized to a safe charset.
type LocalStore struct {
	dir               string
	maxSizeBytes      int64
	allowedExtensions map[string]struct{}
}

func NewLocalStore(cfg *config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &LocalStore{
		dir:               cfg.Dir,
		maxSizeBytes:      cfg.MaxSizeBytes,
		allowedExtensions: allowed,
	}, nil
}

// Allowed reports whether the filename carries a permitted extension.
func (s *LocalStore) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := s.allowedExtensions[ext]
	return ok
}

// MaxSizeBytes returns the upload size ceiling.
func (s *LocalStore) MaxSizeBytes() int64 {
	return s.maxSizeBytes
}

// Save streams the reader to disk and returns the stored relative path.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	if !s.Allowed(filename) {
		return "", fmt.Errorf("file type not allowed: %s", filepath.Ext(filename))
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(filename))
	fullPath := filepath.Join(s.dir, name)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxSizeBytes+1))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if written > s.maxSizeBytes {
		os.Remove(fullPath)
		return "", fmt.Errorf("file exceeds the %d byte limit", s.maxSizeBytes)
	}

	return name, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *LocalStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = unsafeChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "upload"
	}
	return base
}
