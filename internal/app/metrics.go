package app

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/order-report/internal/report"
)

const instrumentationName = "github.com/xenking/order-report"

// reportMetrics holds the instruments recorded for every rendered report.
type reportMetrics struct {
	rendered  metric.Int64Counter
	lineItems metric.Int64Histogram
}

func newReportMetrics(meter metric.Meter) (*reportMetrics, error) {
	rendered, err := meter.Int64Counter("order.report.rendered",
		metric.WithDescription("Number of order reports rendered"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create rendered counter")
	}
	lineItems, err := meter.Int64Histogram("order.report.line_items",
		metric.WithDescription("Line items per rendered order"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create line items histogram")
	}
	return &reportMetrics{rendered: rendered, lineItems: lineItems}, nil
}

func (m *reportMetrics) record(ctx context.Context, f report.Format, lines int) {
	attrs := metric.WithAttributes(attribute.String("format", string(f)))
	m.rendered.Add(ctx, 1, attrs)
	m.lineItems.Record(ctx, int64(lines), attrs)
}
