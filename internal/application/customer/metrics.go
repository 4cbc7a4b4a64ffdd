package customer

import "context"

// Metrics receives customer lifecycle events. The OpenTelemetry
// implementation lives in infrastructure/telemetry.
type Metrics interface {
	CustomerCreated(ctx context.Context)
	CustomerUpdated(ctx context.Context)
	CustomerDeactivated(ctx context.Context)
	CustomerRejected(ctx context.Context, reason string)
}

type nopMetrics struct{}

func (nopMetrics) CustomerCreated(context.Context)          {}
func (nopMetrics) CustomerUpdated(context.Context)          {}
func (nopMetrics) CustomerDeactivated(context.Context)      {}
func (nopMetrics) CustomerRejected(context.Context, string) {}
