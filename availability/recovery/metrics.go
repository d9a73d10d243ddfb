package recovery

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("avail/recovery")

type result string

const (
	resultSuccess     result = "success"
	resultUnavailable result = "unavailable"
	resultInvalidRoot result = "invalid_erasure_root"
)

type Metrics struct {
	recoveriesCounter metric.Int64Counter
	recoveryDuration  metric.Float64Histogram
}

func initMetrics() (*Metrics, error) {
	recoveriesCounter, err := meter.Int64Counter(
		"avail_recovery_total",
		metric.WithDescription("Total count of finished availability recoveries"),
	)
	if err != nil {
		return nil, err
	}

	recoveryDuration, err := meter.Float64Histogram(
		"avail_recovery_duration_seconds",
		metric.WithDescription("Wall-clock duration of one candidate recovery"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		recoveriesCounter: recoveriesCounter,
		recoveryDuration:  recoveryDuration,
	}, nil
}

// observeRecovery records one finished recovery with its result and duration.
func (m *Metrics) observeRecovery(ctx context.Context, res result, took time.Duration) {
	if m == nil {
		return
	}
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	m.recoveriesCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", string(res))))
	m.recoveryDuration.Record(ctx, took.Seconds(),
		metric.WithAttributes(attribute.String("result", string(res))))
}
