// Package failover routes completion requests across an ordered list of
// providers, trying them in priority order and skipping providers whose
// circuit breaker is open. This mirrors the "automatic" provider fallback
// behavior of the generation pipeline: the first configured provider that
// answers wins.
package failover

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
	"github.com/nextlevelsbs/sopbuilder/pkg/router"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	names      []string
	completers []provider.Completer
	stats      []*router.ProviderStats

	failureThreshold int
	recoveryTimeout  time.Duration
}

type Entry struct {
	Name      string
	Completer provider.Completer
}

func NewCompleter(entries ...Entry) (*Completer, error) {
	if len(entries) == 0 {
		return nil, errors.New("at least one completer is required")
	}

	c := &Completer{
		failureThreshold: router.DefaultFailureThreshold,
		recoveryTimeout:  router.DefaultRecoveryTimeout,
	}

	for _, e := range entries {
		c.names = append(c.names, e.Name)
		c.completers = append(c.completers, e.Completer)
		c.stats = append(c.stats, router.NewProviderStats())
	}

	return c, nil
}

// Names returns the configured provider names in priority order
func (c *Completer) Names() []string {
	return append([]string(nil), c.names...)
}

// Select returns the completer registered under name, or an error if unknown
func (c *Completer) Select(name string) (provider.Completer, error) {
	for i, n := range c.names {
		if strings.EqualFold(n, name) {
			return c.completers[i], nil
		}
	}

	return nil, fmt.Errorf("unknown provider %q", name)
}

// Complete tries providers in priority order until one succeeds. Providers
// with an open circuit are skipped; if every circuit is open, the least
// recently failed provider gets a recovery attempt.
func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	var lastErr error

	attempted := false

	for i, p := range c.completers {
		if !c.stats[i].IsAvailable(c.recoveryTimeout) {
			continue
		}

		attempted = true

		completion, err := p.Complete(ctx, messages, options)

		if err != nil {
			c.stats[i].RecordFailure(c.failureThreshold)
			lastErr = fmt.Errorf("provider %s: %w", c.names[i], err)

			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			continue
		}

		c.stats[i].RecordSuccess()
		return completion, nil
	}

	if !attempted {
		return c.completeFallback(ctx, messages, options)
	}

	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// completeFallback runs when every circuit is open: give the least recently
// failed provider a single recovery attempt instead of rejecting outright.
func (c *Completer) completeFallback(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	index := 0

	var oldestFailure time.Time

	for i, stat := range c.stats {
		lastFailure := stat.GetLastFailure()

		if i == 0 || lastFailure.Before(oldestFailure) {
			oldestFailure = lastFailure
			index = i
		}
	}

	completion, err := c.completers[index].Complete(ctx, messages, options)

	if err != nil {
		c.stats[index].RecordFailure(c.failureThreshold)
		return nil, fmt.Errorf("provider %s: %w", c.names[index], err)
	}

	c.stats[index].RecordSuccess()
	return completion, nil
}
