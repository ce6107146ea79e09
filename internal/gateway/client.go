// Package gateway translates CRUD intents into HTTP JSON calls against the REST backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rookgm/salesadmin/internal/models"
)

// Resource is a collection path under the backend base URL
type Resource string

const (
	ResourceOrders     Resource = "orders"
	ResourceCustomers  Resource = "customers"
	ResourceOrderItems Resource = "order-items"
	ResourceProducts   Resource = "products"
	ResourceSellers    Resource = "sellers"
	ResourcePlatforms  Resource = "platforms"
	ResourceStatuses   Resource = "status"
)

// Client talks to the REST backend
type Client struct {
	client  *http.Client
	baseURL string
	metrics *Metrics
}

type Option func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithMetrics instruments every request
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates new Client instance. Requests have no timeout, a request that never
// completes simply never reports back.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		client:  &http.Client{},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the collection URL of res, or the item URL when id is given
func (c *Client) URL(res Resource, id ...string) (string, error) {
	return url.JoinPath(c.baseURL, append([]string{string(res)}, id...)...)
}

// do performs request and decodes a 2xx JSON answer into out when out is not nil
func (c *Client) do(ctx context.Context, method string, res Resource, id string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.observe(res, method, err, time.Since(start))
	}()

	var ids []string
	if id != "" {
		ids = append(ids, id)
	}
	u, err := c.URL(res, ids...)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return &models.TransportError{Op: method + " " + string(res), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return &models.RemoteError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &models.DecodeError{Err: err}
	}

	return nil
}

// Delete removes the item id of res. The answer body is ignored.
func (c *Client) Delete(ctx context.Context, res Resource, id string) error {
	return c.do(ctx, http.MethodDelete, res, id, nil, nil)
}
