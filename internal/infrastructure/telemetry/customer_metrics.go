package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CustomerMetrics counts customer lifecycle events.
type CustomerMetrics struct {
	created     metric.Int64Counter
	updated     metric.Int64Counter
	deactivated metric.Int64Counter
	rejected    metric.Int64Counter
}

// NewCustomerMetrics registers the customer counters on meter
func NewCustomerMetrics(meter metric.Meter) (*CustomerMetrics, error) {
	created, err := meter.Int64Counter("customers.created",
		metric.WithDescription("Customers successfully created"))
	if err != nil {
		return nil, fmt.Errorf("customers.created: %w", err)
	}
	updated, err := meter.Int64Counter("customers.updated",
		metric.WithDescription("Customers successfully updated"))
	if err != nil {
		return nil, fmt.Errorf("customers.updated: %w", err)
	}
	deactivated, err := meter.Int64Counter("customers.deactivated",
		metric.WithDescription("Customers soft-deleted"))
	if err != nil {
		return nil, fmt.Errorf("customers.deactivated: %w", err)
	}
	rejected, err := meter.Int64Counter("customers.rejected",
		metric.WithDescription("Customer writes rejected, by reason"))
	if err != nil {
		return nil, fmt.Errorf("customers.rejected: %w", err)
	}

	return &CustomerMetrics{
		created:     created,
		updated:     updated,
		deactivated: deactivated,
		rejected:    rejected,
	}, nil
}

func (m *CustomerMetrics) CustomerCreated(ctx context.Context) {
	m.created.Add(ctx, 1)
}

func (m *CustomerMetrics) CustomerUpdated(ctx context.Context) {
	m.updated.Add(ctx, 1)
}

func (m *CustomerMetrics) CustomerDeactivated(ctx context.Context) {
	m.deactivated.Add(ctx, 1)
}

// CustomerRejected records a rejected write; reason is an error code such as INVALID_CPF
func (m *CustomerMetrics) CustomerRejected(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
