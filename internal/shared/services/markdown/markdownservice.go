// Package markdown renders chatbot replies, which are authored as markdown,
// into sanitized HTML for the web layer, and strips markup from
// user-submitted text before it reaches the admin view.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
	StripTags(content string) string
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &serviceImpl{
		md:     md,
		policy: bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *serviceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *serviceImpl) ToHTMLSanitized(markdown string) (string, error) {
	rendered, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.Sanitize(rendered), nil
}

// StripTags removes all markup. Used on user-supplied ticket and chat text
// before it is embedded in the admin dashboard.
func (s *serviceImpl) StripTags(content string) string {
	return s.strict.Sanitize(content)
}
