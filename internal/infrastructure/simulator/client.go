// Package simulator talks to the core-bank simulator over HTTP. Every failed
// call is reported as a *domain.TransportError.
package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-baas-api/internal/config"
	"github.com/go-baas-api/internal/domain"
)

// maxErrorBody caps how much of an upstream error body is kept.
const maxErrorBody = 64 << 10

// NewHTTPClient builds the shared HTTP client for simulator calls. No retries
// are made; the timeout is the only bound on a call.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.SimulatorTimeout}
}

// Collection is a simulator resource collection such as /customers.
type Collection[T domain.Keyed] struct {
	http    *http.Client
	baseURL string
}

// NewCollection returns a client for baseURL/path.
func NewCollection[T domain.Keyed](httpClient *http.Client, baseURL, path string) *Collection[T] {
	return &Collection[T]{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/") + "/" + strings.Trim(path, "/"),
	}
}

func (c *Collection[T]) itemURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insert scans the collection for the unique key before posting. The simulator
// has no uniqueness constraint of its own, so the scan is best effort.
func (c *Collection[T]) Insert(ctx context.Context, r T) error {
	if err := c.checkUniqueKey(ctx, r); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, c.baseURL, r, nil)
}

// Put rejects a unique key held by another resource, then replaces r.
func (c *Collection[T]) Put(ctx context.Context, r T) error {
	if err := c.checkUniqueKey(ctx, r); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, c.itemURL(r.ResourceID()), r, nil)
}

func (c *Collection[T]) checkUniqueKey(ctx context.Context, r T) error {
	k := r.UniqueKey()
	if k == "" {
		return nil
	}
	all, err := c.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.UniqueKey() == k && existing.ResourceID() != r.ResourceID() {
			return domain.NewFault(domain.ErrConflict, "Email %s is already registered", k)
		}
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Collection[T]) do(ctx context.Context, method, target string, in, out any) error {
	fail := func(sent bool, err error) error {
		return &domain.TransportError{Method: method, URL: target, Sent: sent, Err: err}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fail(false, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fail(false, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.TransportError{
			Method:   method,
			URL:      target,
			Sent:     true,
			Response: &domain.UpstreamResponse{StatusCode: resp.StatusCode, Body: b},
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(true, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
