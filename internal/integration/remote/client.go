// Package remote implements the data-source adapters against the remote
// expense, budget and auth API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/expense-tracker/web/internal/application/adapter"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// Envelope results.
const (
	ResultSuccess = "SUCCESS"
	ResultError   = "ERROR"
)

// maxErrorBody bounds how much of a non-JSON error body is read.
const maxErrorBody = 4 << 10

// Envelope is the uniform wrapper of every remote response.
type Envelope[T any] struct {
	Result  string `json:"result"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Client performs envelope requests against the remote API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP creates a client that sends requests through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do sends the request and decodes the envelope's data into out. out may be
// nil when the caller ignores the data.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, out *T) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := adapter.AccessTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("Remote request failed", "method", method, "path", path, "error", err)
		return domainerror.NewRemoteError(0, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteUnavailable, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerror.NewRemoteError(resp.StatusCode, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteUnavailable, err))
	}

	var envelope Envelope[json.RawMessage]
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode == http.StatusUnauthorized {
		return domainerror.NewRemoteError(resp.StatusCode, envelope.Message, domainerror.ErrRemoteUnauthorized)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := envelope.Message
		if decodeErr != nil && len(raw) <= maxErrorBody {
			slog.Warn("Remote error body is not an envelope",
				"status", resp.StatusCode,
				"path", path,
				"body", string(raw),
			)
		}
		return domainerror.NewRemoteError(resp.StatusCode, message, domainerror.ErrRemoteRejected)
	}

	if decodeErr != nil {
		return domainerror.NewRemoteError(resp.StatusCode, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteMalformed, decodeErr))
	}

	if envelope.Result != ResultSuccess {
		return domainerror.NewRemoteError(resp.StatusCode, envelope.Message, domainerror.ErrRemoteRejected)
	}

	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return domainerror.NewRemoteError(resp.StatusCode, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteMalformed, err))
	}
	return nil
}

// IsNotFound reports whether err is the remote API answering 404.
func IsNotFound(err error) bool {
	var remoteErr *domainerror.RemoteError
	return errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound
}
