package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"gramseva/internal/shared/config"
)

// ttsQueryLimit is the longest text the endpoint accepts in one request.
const ttsQueryLimit = 200

// TTSClient fetches spoken audio for short texts from the unauthenticated
// Google text-to-speech endpoint. Output is MP3 bytes.
type TTSClient struct {
	endpoint   string
	enabled    bool
	httpClient *http.Client
}

func NewTTSClient(cfg *config.TranslateConfig) *TTSClient {
	return &TTSClient{
		endpoint: cfg.TTSEndpoint,
		enabled:  cfg.Enabled,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
	}
}

func (c *TTSClient) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if !c.enabled {
		return nil, fmt.Errorf("text-to-speech is disabled")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	if len(text) > ttsQueryLimit {
		text = text[:ttsQueryLimit]
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language tag %q: %w", lang, err)
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", tag.String())
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts endpoint returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read tts response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts response was empty")
	}

	return audio, nil
}
