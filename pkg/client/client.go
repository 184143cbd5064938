// Package client is a small Go client for the SOP builder REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	Templates TemplateService

	Generations GenerationService

	Documents DocumentService

	Brand BrandService

	Compliance ComplianceService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Templates: NewTemplateService(opts...),

		Generations: NewGenerationService(opts...),

		Documents: NewDocumentService(opts...),

		Brand: NewBrandService(opts...),

		Compliance: NewComplianceService(opts...),
	}
}

type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RequestConfig) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(data)
	}

	req, _ := http.NewRequestWithContext(ctx, method, c.URL+path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		var failure struct {
			Error string `json:"error"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return nil, errors.New(failure.Error)
		}

		return nil, errors.New(resp.Status)
	}

	return resp, nil
}

func (c *RequestConfig) doJSON(ctx context.Context, method, path string, body, result any) error {
	resp, err := c.do(ctx, method, path, body)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if result == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func Ptr[T any](v T) *T {
	return &v
}
