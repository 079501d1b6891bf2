//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package metric installs an OpenTelemetry meter provider for the scoring
// instruments and builds OTLP exporters for it.
package metric

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	itelemetry "trpc.group/trpc-go/trpc-mteval/internal/telemetry"
)

// InitMeterProvider initializes the meter provider and the evaluation instruments.
func InitMeterProvider(mp metric.MeterProvider) error {
	if mp == nil {
		return fmt.Errorf("meter provider is nil")
	}
	meter := mp.Meter(itelemetry.MeterNameEvaluation)

	rowsEvaluated, err := meter.Int64Counter(
		itelemetry.MetricRowsEvaluated,
		metric.WithDescription("Total number of scored rows"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", itelemetry.MetricRowsEvaluated, err)
	}
	rowsSkipped, err := meter.Int64Counter(
		itelemetry.MetricRowsSkipped,
		metric.WithDescription("Total number of rows skipped for a schema mismatch"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", itelemetry.MetricRowsSkipped, err)
	}
	score, err := itelemetry.NewHistogram(meter,
		itelemetry.MetricScore,
		"Metric score per hypothesis",
		"1",
		itelemetry.ScoreBuckets,
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", itelemetry.MetricScore, err)
	}
	duration, err := itelemetry.NewHistogram(meter,
		itelemetry.MetricRowDuration,
		"Time spent scoring one row",
		"s",
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to create metric %s: %w", itelemetry.MetricRowDuration, err)
	}

	itelemetry.MeterProvider = mp
	itelemetry.EvaluationMeter = meter
	itelemetry.MetricRowsEvaluatedCnt = rowsEvaluated
	itelemetry.MetricRowsSkippedCnt = rowsSkipped
	itelemetry.MetricScoreValue = score
	itelemetry.MetricRowDurationValue = duration
	return nil
}

// GetMeterProvider returns the meter provider.
func GetMeterProvider() metric.MeterProvider {
	return itelemetry.MeterProvider
}

// SetHistogramBuckets updates bucket boundaries of a histogram created by
// InitMeterProvider. metricName is mteval.score or mteval.row.duration.
func SetHistogramBuckets(metricName string, boundaries []float64) error {
	var target itelemetry.Float64Recorder
	switch metricName {
	case itelemetry.MetricScore:
		target = itelemetry.MetricScoreValue
	case itelemetry.MetricRowDuration:
		target = itelemetry.MetricRowDurationValue
	default:
		return fmt.Errorf("unknown or unsupported histogram metric: %s", metricName)
	}
	h, ok := target.(*itelemetry.Histogram)
	if !ok {
		return fmt.Errorf("metric %s not initialized", metricName)
	}
	return h.SetBuckets(boundaries)
}

// NewMeterProvider creates a meter provider exporting over OTLP.
// Without WithEndpoint the collector address comes from
// OTEL_EXPORTER_OTLP_METRICS_ENDPOINT, then OTEL_EXPORTER_OTLP_ENDPOINT,
// then localhost:4317 (grpc) or localhost:4318 (http).
func NewMeterProvider(ctx context.Context, opts ...Option) (*sdkmetric.MeterProvider, error) {
	o := &options{
		resource: itelemetry.DefaultResourceConfig(),
		protocol: itelemetry.ProtocolGRPC,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.endpoint == "" {
		o.endpoint = metricsEndpoint(o.protocol)
	}

	res, err := itelemetry.NewResource(ctx, o.resource)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	exporter, err := newExporter(ctx, o.protocol, o.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	), nil
}

func metricsEndpoint(protocol string) string {
	return itelemetry.Endpoint(itelemetry.SignalMetrics, protocol)
}

func newExporter(ctx context.Context, protocol, endpoint string) (sdkmetric.Exporter, error) {
	if protocol == itelemetry.ProtocolHTTP {
		exp, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP metrics exporter: %w", err)
		}
		return exp, nil
	}
	conn, err := itelemetry.NewGRPCConn(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics connection: %w", err)
	}
	exp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics exporter: %w", err)
	}
	return exp, nil
}

// Option configures NewMeterProvider.
type Option func(*options)

type options struct {
	endpoint string
	protocol string
	resource itelemetry.ResourceConfig
}

// WithEndpoint sets the collector host and port, e.g. "example.com:4317".
// It takes precedence over the environment.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithProtocol selects "grpc" (default) or "http".
func WithProtocol(protocol string) Option {
	return func(o *options) {
		o.protocol = protocol
	}
}

// WithServiceName overrides the service.name resource attribute.
func WithServiceName(name string) Option {
	return func(o *options) {
		o.resource.ServiceName = name
	}
}

// WithServiceNamespace overrides the service.namespace resource attribute.
func WithServiceNamespace(namespace string) Option {
	return func(o *options) {
		o.resource.ServiceNamespace = namespace
	}
}

// WithServiceVersion overrides the service.version resource attribute.
func WithServiceVersion(version string) Option {
	return func(o *options) {
		o.resource.ServiceVersion = version
	}
}

// WithResourceAttributes appends custom resource attributes.
func WithResourceAttributes(attrs ...attribute.KeyValue) Option {
	return func(o *options) {
		o.resource.Attributes = append(o.resource.Attributes, attrs...)
	}
}
