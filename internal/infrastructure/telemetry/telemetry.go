// Package telemetry wires OpenTelemetry traces, metrics and logs to an OTLP
// collector and defines the service's own instruments.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clientes/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const shutdownTimeout = 10 * time.Second

// Config selects the signals exported to the collector. Metrics and logs are
// only exported when Enabled is also set.
type Config struct {
	Enabled           bool
	CollectorEndpoint string
	Insecure          bool
	ServiceName       string
	ServiceVersion    string

	SamplingRatio   float64
	MetricsEnabled  bool
	MetricsInterval time.Duration
	LogsEnabled     bool
}

// ConfigFrom builds a Config from the application settings
func ConfigFrom(cfg config.TelemetryConfig, version string) Config {
	return Config{
		Enabled:           cfg.Enabled,
		CollectorEndpoint: cfg.CollectorEndpoint,
		Insecure:          cfg.Insecure,
		ServiceName:       cfg.ServiceName,
		ServiceVersion:    version,
		SamplingRatio:     cfg.SamplingRatio,
		MetricsEnabled:    cfg.MetricsEnabled,
		MetricsInterval:   cfg.MetricsInterval,
		LogsEnabled:       cfg.LogsEnabled,
	}
}

func (c Config) metricsOn() bool { return c.Enabled && c.MetricsEnabled }
func (c Config) logsOn() bool    { return c.Enabled && c.LogsEnabled }

func newResource(cfg Config) (*resource.Resource, error) {
	version := cfg.ServiceVersion
	if version == "" {
		version = "dev"
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// Shutdowner is implemented by every provider in this package
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownAll flushes providers in reverse order, so the logger provider
// passed first still records the others' shutdown errors. Each provider gets
// its own shutdownTimeout bounded by ctx.
func ShutdownAll(ctx context.Context, providers ...Shutdowner) error {
	var errs []error
	for i := len(providers) - 1; i >= 0; i-- {
		if providers[i] == nil {
			continue
		}
		sctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		errs = append(errs, providers[i].Shutdown(sctx))
		cancel()
	}
	return errors.Join(errs...)
}
