package app

import (
	"context"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/order-report/internal/domain/order"
	"github.com/xenking/order-report/internal/report"
)

// Run builds the sample order and prints its report to stdout. It is the
// single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	format, err := cfg.ReportFormat()
	if err != nil {
		return errors.Wrap(err, "report format")
	}

	r, err := NewRenderer(os.Stdout, lg, m.MeterProvider(), m.TracerProvider())
	if err != nil {
		return errors.Wrap(err, "create renderer")
	}

	return r.Render(ctx, format, SampleOrder())
}

// Renderer writes order reports and records telemetry about them.
type Renderer struct {
	out     io.Writer
	lg      *zap.Logger
	tracer  trace.Tracer
	metrics *reportMetrics
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(
	out io.Writer,
	lg *zap.Logger,
	mp metric.MeterProvider,
	tp trace.TracerProvider,
) (*Renderer, error) {
	m, err := newReportMetrics(mp.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}
	return &Renderer{
		out:     out,
		lg:      lg,
		tracer:  tp.Tracer(instrumentationName),
		metrics: m,
	}, nil
}

// Render writes the report for o in format f.
func (r *Renderer) Render(ctx context.Context, f report.Format, o *order.Order) error {
	lines := len(o.Details())

	ctx, span := r.tracer.Start(ctx, "RenderReport",
		trace.WithAttributes(
			attribute.String("report.format", string(f)),
			attribute.Int("order.lines", lines),
		),
	)
	defer span.End()

	r.lg.Info("Rendering order report",
		zap.String("format", string(f)),
		zap.String("customer", o.Customer().Name),
		zap.Int("lines", lines),
	)

	if err := report.Write(r.out, f, o); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return errors.Wrap(err, "render report")
	}
	r.metrics.record(ctx, f, lines)

	r.lg.Info("Order report rendered",
		zap.Stringer("subtotal", o.SubTotal()),
		zap.Stringer("tax", o.Tax()),
		zap.Stringer("total", o.Total()),
		zap.Stringer("total_weight", o.TotalWeight()),
	)
	return nil
}
