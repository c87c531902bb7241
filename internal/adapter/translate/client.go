// Package translate implements the translation port against the public
// Google "gtx" translate endpoint.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"wellness/internal/domain"
)

// DefaultEndpoint is the public translate host.
const DefaultEndpoint = "https://translate.googleapis.com"

var (
	ErrUnsupportedTarget = errors.New("unsupported target language")
	ErrMalformedResponse = errors.New("malformed translate response")
)

var _ domain.TextTranslator = (*Client)(nil)

// Client calls the gtx endpoint. The zero value is not usable; use New.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a Client. An empty endpoint selects DefaultEndpoint.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
	}
}

// Translate sends text to the provider. source may be "auto".
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if _, err := language.Parse(target); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnsupportedTarget, target, err)
	}
	if source == "" {
		source = "auto"
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return joinSegments(payload)
}

// joinSegments concatenates the translated text of every sentence segment.
// The payload looks like [[["Hola","Hello",...],...],null,"en",...].
func joinSegments(payload []any) (string, error) {
	if len(payload) == 0 {
		return "", ErrMalformedResponse
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", ErrMalformedResponse
	}
	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	if b.Len() == 0 {
		return "", ErrMalformedResponse
	}
	return b.String(), nil
}
