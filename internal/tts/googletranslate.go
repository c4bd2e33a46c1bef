package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// GoogleTranslateClient implements Synthesizer using the unofficial Google
// Translate text-to-speech endpoint. Responses are MP3.
type GoogleTranslateClient struct {
	httpClient  *http.Client
	baseURL     string
	language    string
	rateLimiter *rateLimiter
}

type rateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	since := time.Since(r.lastCall)
	if since < r.interval {
		time.Sleep(r.interval - since)
	}
	r.lastCall = time.Now()
}

// NewGoogleTranslateClient creates a new TTS client for the given voice
// language (e.g. "fr").
func NewGoogleTranslateClient(baseURL, language string, timeout time.Duration) *GoogleTranslateClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleTranslateClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		language:    language,
		rateLimiter: newRateLimiter(500 * time.Millisecond),
	}
}

func (c *GoogleTranslateClient) Name() string {
	return "googletranslate"
}

// Synthesize fetches spoken audio for the text.
func (c *GoogleTranslateClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	c.rateLimiter.wait()

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", c.language)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "FrenchVocabAnki/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio for text: %s", text)
	}

	return audio, nil
}
