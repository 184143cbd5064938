package otel

import (
	"context"
	"time"

	"github.com/nextlevelsbs/sopbuilder/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer

	tokenUsageMetric        metric.Int64Counter
	operationDurationMetric metric.Float64Histogram
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	meter := otel.Meter(instrumentationName)

	tokenUsageMetric, _ := meter.Int64Counter("gen_ai.client.token.usage")
	operationDurationMetric, _ := meter.Float64Histogram("gen_ai.client.operation.duration", metric.WithUnit("s"))

	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,

		tokenUsageMetric:        tokenUsageMetric,
		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	model := p.model

	if result.Model != "" {
		model = result.Model
	}

	attrs := KeyValues([]KeyValue{
		attribute.String("gen_ai.provider.name", p.provider),
		attribute.String("gen_ai.request.model", p.model),
		attribute.String("gen_ai.response.model", model),
	}, EndUserAttrs(ctx))

	p.operationDurationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))

	if result.Usage != nil {
		if result.Usage.InputTokens > 0 {
			p.tokenUsageMetric.Add(ctx, int64(result.Usage.InputTokens),
				metric.WithAttributes(KeyValues(attrs, []KeyValue{attribute.String("gen_ai.token.type", "input")})...))
		}

		if result.Usage.OutputTokens > 0 {
			p.tokenUsageMetric.Add(ctx, int64(result.Usage.OutputTokens),
				metric.WithAttributes(KeyValues(attrs, []KeyValue{attribute.String("gen_ai.token.type", "output")})...))
		}
	}

	return result, nil
}
