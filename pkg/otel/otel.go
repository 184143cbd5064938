package otel

import (
	"context"
	"log/slog"
	"os"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const instrumentationName = "github.com/nextlevelsbs/sopbuilder"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

// Setup initializes the OTLP log, trace and metric pipelines. When telemetry
// is disabled only a plain slog handler is installed.
func Setup(ctx context.Context, name, version string) error {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	if !EnableTelemetry {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		return nil
	}

	resource := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
		semconv.ServiceVersion(version),
	)

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	return nil
}
