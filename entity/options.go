package entity

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/go-arrower/entities/alog"
)

// Option configures a collection at construction time.
type Option func(config *collectionConfig)

// WithLogger sets the logger a collection reports overwritten and rejected entities to.
// The collections log on alog.LevelDebug only. Default is alog.NewNoop.
func WithLogger(logger alog.Logger) Option {
	return func(config *collectionConfig) {
		config.logger = logger
	}
}

// WithMeterProvider sets the provider for the collection's metrics.
// Every insert is counted in entities.collection.inserts,
// with the attributes entity (the Go type name) and outcome (inserted, replaced, or rejected).
func WithMeterProvider(meterProvider metric.MeterProvider) Option {
	return func(config *collectionConfig) {
		config.meterProvider = meterProvider
	}
}

type collectionConfig struct {
	logger        alog.Logger
	meterProvider metric.MeterProvider
}

const (
	outcomeInserted = "inserted"
	outcomeReplaced = "replaced"
	outcomeRejected = "rejected"
)

// telemetry is the logging and metering shared by both collections.
type telemetry struct {
	logger  alog.Logger
	inserts metric.Int64Counter
	entity  attribute.KeyValue
}

func newTelemetry[T any](opts ...Option) telemetry {
	config := &collectionConfig{
		logger:        alog.NewNoop(),
		meterProvider: noop.NewMeterProvider(),
	}

	for _, opt := range opts {
		opt(config)
	}

	meter := config.meterProvider.Meter("github.com/go-arrower/entities/entity")

	inserts, _ := meter.Int64Counter(
		"entities.collection.inserts",
		metric.WithDescription("number of inserts into an entity collection, by outcome"),
	)

	return telemetry{
		logger:  config.logger,
		inserts: inserts,
		entity:  attribute.String("entity", entityName[T]()),
	}
}

// record counts an insert. Replaced and rejected inserts are logged as well.
func (t telemetry) record(outcome string, id slog.LogValuer) {
	ctx := context.Background()

	t.inserts.Add(ctx, 1, metric.WithAttributes(t.entity, attribute.String("outcome", outcome)))

	switch outcome {
	case outcomeReplaced:
		t.logger.LogAttrs(ctx, alog.LevelDebug, "entity replaced", slog.Any("id", id))
	case outcomeRejected:
		t.logger.LogAttrs(ctx, alog.LevelDebug, "entity rejected: exists already", slog.Any("id", id))
	}
}
