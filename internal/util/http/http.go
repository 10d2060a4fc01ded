// Package http fetches remote resources such as images given by URL.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/jmylchreest/autotheme/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps the response body read by Fetch.
	DefaultMaxBytes = 32 << 20
)

// ErrContentType is returned when a response's media type is not one the
// caller accepts.
var ErrContentType = errors.New("unexpected content type")

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// MaxBytes limits the body size. If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// ContentTypes lists accepted media type prefixes such as "image/".
	// Empty accepts any response.
	ContentTypes []string

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string
}

// IsURL reports whether s is an HTTP(S) URL.
func IsURL(s string) bool {
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(s, scheme) && len(s) > len(scheme) {
			return true
		}
	}
	return false
}

// Fetch retrieves content from a URL with context and timeout support.
// It identifies itself with version.UserAgent and treats any non-200 status
// or unaccepted media type as an error.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", version.UserAgent())
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if err := checkContentType(resp.Header.Get("Content-Type"), opts.ContentTypes); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("response body exceeds %d bytes", limit)
	}

	return data, nil
}

func checkContentType(header string, accepted []string) error {
	if len(accepted) == 0 {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrContentType, header)
	}
	for _, prefix := range accepted {
		if strings.HasPrefix(mediaType, prefix) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrContentType, mediaType)
}
