package openai

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

type Config struct {
	url string

	token string
	model string

	client *http.Client

	headers map[string]string
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// WithHeader adds an extra request header. OpenRouter uses HTTP-Referer and
// X-Title for attribution.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}

		c.headers[key] = value
	}
}

func (c *Config) Options() []option.RequestOption {
	if c.url == "" {
		c.url = "https://api.openai.com/v1/"
	}

	if c.client == nil {
		c.client = http.DefaultClient
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	options := []option.RequestOption{
		option.WithBaseURL(c.url),
		option.WithHTTPClient(c.client),
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	for key, value := range c.headers {
		options = append(options, option.WithHeader(key, value))
	}

	return options
}
