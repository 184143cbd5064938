package anthropic

import (
	"context"

	"github.com/nextlevelsbs/sopbuilder/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := c.convertMessageRequest(messages, options)

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	result := &provider.Completion{
		ID:    message.ID,
		Model: string(message.Model),

		Reason: toCompletionReason(message.StopReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(message.Usage),
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			result.Message.Content = append(result.Message.Content, provider.TextContent(block.Text))
		}
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) *anthropic.MessageNewParams {
	req := &anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	if options.Stop != nil {
		req.StopSequences = options.Stop
	}

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.System = append(req.System, anthropic.TextBlockParam{Text: m.Text()})

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text())))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text())))
		}
	}

	return req
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}

func toCompletionReason(val anthropic.StopReason) provider.CompletionReason {
	switch string(val) {
	case "end_turn", "stop_sequence":
		return provider.CompletionReasonStop

	case "max_tokens":
		return provider.CompletionReasonLength

	case "refusal":
		return provider.CompletionReasonFilter

	default:
		return ""
	}
}
