package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"gramseva/internal/shared/config"
)

// Client calls the unauthenticated Google translate endpoint. Everything
// here is best-effort: callers fall back to the untranslated text on any
// error, so failures are reported but never fatal.
type Client struct {
	endpoint   string
	enabled    bool
	httpClient *http.Client
}

func NewClient(cfg *config.TranslateConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		enabled:  cfg.Enabled,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
	}
}

func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("translation is disabled")
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	tag, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", targetLang, err)
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", tag.String())
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	return parseTranslation(body)
}

// parseTranslation extracts the translated segments from the endpoint's
// nested-array response: [[["segment", "original", ...], ...], ...].
func parseTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("unexpected translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translate segment list: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(seg[0], &text); err != nil {
			continue
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("translate response held no text")
	}
	return sb.String(), nil
}
