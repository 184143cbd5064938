package config

import (
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/nextlevelsbs/sopbuilder/pkg/limiter"
	"github.com/nextlevelsbs/sopbuilder/pkg/otel"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider/anthropic"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider/openai"
	"github.com/nextlevelsbs/sopbuilder/pkg/router/failover"
)

// registerCompleter builds the provider fallback chain in priority order.
// Every configured provider is wrapped with rate limiting and telemetry.
// With no keys configured the chain stays empty.
func (c *Config) registerCompleter() error {
	limit := createLimiter(envInt("LLM_RATE_LIMIT", 0))

	client := &http.Client{
		Timeout: time.Duration(envInt("LLM_TIMEOUT", 30)) * time.Second,
	}

	var entries []failover.Entry

	add := func(name, model string, p provider.Completer) {
		p = limiter.NewCompleter(limit, p)
		p = otel.NewCompleter(name, model, p)

		entries = append(entries, failover.Entry{
			Name:      name,
			Completer: p,
		})
	}

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		model := envString("GROQ_MODEL", "llama-3.1-70b-versatile")

		p, err := openai.NewCompleter(
			envString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			model,
			openai.WithToken(key),
			openai.WithClient(client),
		)

		if err != nil {
			return err
		}

		add("groq", model, p)
	}

	if key := os.Getenv("TOGETHER_API_KEY"); key != "" {
		model := envString("TOGETHER_MODEL", "meta-llama/Llama-3-70b-chat-hf")

		p, err := openai.NewCompleter(
			envString("TOGETHER_BASE_URL", "https://api.together.xyz/v1"),
			model,
			openai.WithToken(key),
			openai.WithClient(client),
		)

		if err != nil {
			return err
		}

		add("together", model, p)
	}

	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		model := envString("OPENROUTER_MODEL", "deepseek/deepseek-chat")

		p, err := openai.NewCompleter(
			envString("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			model,
			openai.WithToken(key),
			openai.WithClient(client),
			openai.WithHeader("HTTP-Referer", "https://nextlevelsbs.com"),
			openai.WithHeader("X-Title", "SOP Builder"),
		)

		if err != nil {
			return err
		}

		add("openrouter", model, p)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		model := envString("OPENAI_MODEL", "gpt-4o-mini")

		p, err := openai.NewCompleter(
			envString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			model,
			openai.WithToken(key),
			openai.WithClient(client),
		)

		if err != nil {
			return err
		}

		add("openai", model, p)
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		model := envString("ANTHROPIC_MODEL", "claude-sonnet-4-0")

		p, err := anthropic.NewCompleter(
			os.Getenv("ANTHROPIC_BASE_URL"),
			model,
			anthropic.WithToken(key),
			anthropic.WithClient(client),
		)

		if err != nil {
			return err
		}

		add("anthropic", model, p)
	}

	if len(entries) == 0 {
		return nil
	}

	completer, err := failover.NewCompleter(entries...)

	if err != nil {
		return err
	}

	c.Completer = completer

	return nil
}

func createLimiter(limit int) *rate.Limiter {
	if limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(limit), limit)
}
