// Package config assembles the service from environment variables: the
// provider fallback chain, catalog and compliance data, the generator, job
// dispatching, and document storage.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nextlevelsbs/sopbuilder/pkg/auth"
	"github.com/nextlevelsbs/sopbuilder/pkg/auth/static"
	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"
	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	"github.com/nextlevelsbs/sopbuilder/pkg/document"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/job"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
	"github.com/nextlevelsbs/sopbuilder/pkg/router/failover"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	Catalog    *catalog.Catalog
	Compliance *compliance.Set

	Completer *failover.Completer

	Generator *generator.Generator

	Jobs       job.Store
	Dispatcher *job.Dispatcher

	Documents *document.Store
	Renderer  *document.Renderer

	Brand *brand.Store
}

func FromEnv() (*Config, error) {
	c := &Config{
		Address: ":" + envString("PORT", "8000"),
	}

	if token := os.Getenv("API_TOKEN"); token != "" {
		authorizer, err := static.New(token)

		if err != nil {
			return nil, err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	if err := c.registerCatalog(); err != nil {
		return nil, err
	}

	if err := c.registerCompliance(); err != nil {
		return nil, err
	}

	if err := c.registerCompleter(); err != nil {
		return nil, err
	}

	if err := c.registerGenerator(); err != nil {
		return nil, err
	}

	if err := c.registerJobs(); err != nil {
		return nil, err
	}

	if err := c.registerDocuments(); err != nil {
		return nil, err
	}

	if err := c.registerBrand(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) registerCatalog() error {
	if path := os.Getenv("TEMPLATES_FILE"); path != "" {
		parsed, err := catalog.Parse(path)

		if err != nil {
			return err
		}

		c.Catalog = parsed

		return nil
	}

	c.Catalog = catalog.New()

	return nil
}

func (c *Config) registerCompliance() error {
	if dir := os.Getenv("COMPLIANCE_DIR"); dir != "" {
		parsed, err := compliance.ParseDir(dir)

		if err != nil {
			return err
		}

		c.Compliance = parsed

		return nil
	}

	c.Compliance = compliance.New()

	return nil
}

func (c *Config) registerGenerator() error {
	cache, err := generator.NewCache(
		envString("CACHE_DIR", "./cache"),
		time.Duration(envInt("CACHE_DURATION_HOURS", 24))*time.Hour,
	)

	if err != nil {
		return err
	}

	// keep the interface nil when no provider is configured, the generator
	// then serves built-in content
	var completer provider.Completer

	if c.Completer != nil {
		completer = c.Completer
	}

	c.Generator = generator.New(completer, c.Compliance,
		generator.WithCache(cache),
		generator.WithMaxTokens(envInt("LLM_MAX_TOKENS", 2000)),
		generator.WithTemperature(envFloat32("LLM_TEMPERATURE", 0.7)),
	)

	return nil
}

func (c *Config) registerJobs() error {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr: addr,

			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		})

		c.Jobs = job.NewRedisStore(client)
	} else {
		c.Jobs = job.NewMemoryStore()
	}

	options := []job.DispatcherOption{
		job.WithWorkers(int64(envInt("GENERATE_CONCURRENCY", 4))),
	}

	if c.Completer != nil {
		options = append(options, job.WithSelector(c.Completer))
	}

	c.Dispatcher = job.NewDispatcher(c.Jobs, c.Generator, options...)

	return nil
}

func (c *Config) registerDocuments() error {
	store, err := document.NewStore(filepath.Join(envString("OUTPUT_DIR", "./outputs"), "pdfs"))

	if err != nil {
		return err
	}

	c.Documents = store
	c.Renderer = document.NewRenderer()

	return nil
}

func (c *Config) registerBrand() error {
	store, err := brand.NewStore(
		envString("CONFIG_DIR", "./config"),
		filepath.Join(envString("UPLOAD_DIR", "./uploads"), "logos"),
	)

	if err != nil {
		return err
	}

	c.Brand = store

	return nil
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}

	return fallback
}

func envFloat32(key string, fallback float32) float32 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 32); err == nil {
			return float32(parsed)
		}
	}

	return fallback
}
