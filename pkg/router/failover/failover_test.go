package failover

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
)

type mockCompleter struct {
	err      error
	response string
	calls    atomic.Int64
}

func (m *mockCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	m.calls.Add(1)

	if m.err != nil {
		return nil, m.err
	}

	return &provider.Completion{
		ID: "test",
		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
			Content: []provider.Content{
				{Text: m.response},
			},
		},
	}, nil
}

func TestNewCompleter(t *testing.T) {
	t.Run("requires at least one completer", func(t *testing.T) {
		_, err := NewCompleter()
		if err == nil {
			t.Error("expected error for empty completers")
		}
	})

	t.Run("creates completer with providers", func(t *testing.T) {
		c, err := NewCompleter(Entry{Name: "openrouter", Completer: &mockCompleter{response: "hi"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c == nil {
			t.Error("expected non-nil completer")
		}
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	messages := []provider.Message{provider.UserMessage("test")}

	t.Run("uses first provider when healthy", func(t *testing.T) {
		first := &mockCompleter{response: "first"}
		second := &mockCompleter{response: "second"}

		c, _ := NewCompleter(
			Entry{Name: "groq", Completer: first},
			Entry{Name: "openrouter", Completer: second},
		)

		completion, err := c.Complete(ctx, messages, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completion.Message.Text() != "first" {
			t.Errorf("expected first provider response, got %q", completion.Message.Text())
		}
		if second.calls.Load() != 0 {
			t.Error("second provider should not be called")
		}
	})

	t.Run("falls through to next provider on failure", func(t *testing.T) {
		first := &mockCompleter{err: errors.New("rate limited")}
		second := &mockCompleter{response: "second"}

		c, _ := NewCompleter(
			Entry{Name: "groq", Completer: first},
			Entry{Name: "openrouter", Completer: second},
		)

		completion, err := c.Complete(ctx, messages, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completion.Message.Text() != "second" {
			t.Errorf("expected fallback response, got %q", completion.Message.Text())
		}
	})

	t.Run("returns error when all providers fail", func(t *testing.T) {
		c, _ := NewCompleter(
			Entry{Name: "groq", Completer: &mockCompleter{err: errors.New("boom")}},
			Entry{Name: "openrouter", Completer: &mockCompleter{err: errors.New("boom")}},
		)

		_, err := c.Complete(ctx, messages, nil)
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("skips provider after circuit opens", func(t *testing.T) {
		failing := &mockCompleter{err: errors.New("down")}
		healthy := &mockCompleter{response: "ok"}

		c, _ := NewCompleter(
			Entry{Name: "groq", Completer: failing},
			Entry{Name: "openrouter", Completer: healthy},
		)

		for range c.failureThreshold {
			if _, err := c.Complete(ctx, messages, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		failingCalls := failing.calls.Load()

		if _, err := c.Complete(ctx, messages, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if failing.calls.Load() != failingCalls {
			t.Error("expected failing provider to be skipped after circuit opened")
		}
	})
}

func TestSelect(t *testing.T) {
	c, _ := NewCompleter(
		Entry{Name: "groq", Completer: &mockCompleter{response: "a"}},
		Entry{Name: "openrouter", Completer: &mockCompleter{response: "b"}},
	)

	if _, err := c.Select("OpenRouter"); err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}

	if _, err := c.Select("bedrock"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
