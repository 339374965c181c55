// Package client is the remote resource client the presentation layer uses
// to reach the library backend. Every call is a single request/response
// round trip: no retries, no caching, no ordering guarantees between calls.
// Failures map onto the domain error taxonomy (ErrNotFound,
// *ValidationError, ErrExtensionDenied, *NetworkError).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bibliothek-backend/internal/domain"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for a backend base URL, e.g.
// "http://192.168.1.93:8080/bibliothek". A nil httpClient uses
// http.DefaultClient; deadlines come from the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type errorBody struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

// do issues one request and decodes a success payload into out (when out is
// non-nil). Non-success statuses are translated into typed errors; there is
// deliberately no retry on any failure.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.NetworkError{Op: op, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.NetworkError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
		return nil
	}

	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest:
		msgs := eb.Messages
		if len(msgs) == 0 && eb.Error != "" {
			msgs = []string{eb.Error}
		}
		return &domain.ValidationError{Messages: msgs}
	case http.StatusConflict:
		if strings.Contains(eb.Error, "maximum duration") {
			return domain.ErrExtensionDenied
		}
		return domain.ErrMediumUnavailable
	default:
		return &domain.NetworkError{Op: op, Status: resp.StatusCode}
	}
}

func queryPath(base string, field, value string) string {
	if field == "" {
		return base
	}
	return base + "?" + url.Values{field: []string{value}}.Encode()
}
