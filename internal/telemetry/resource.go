//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Default OTLP collector addresses.
const (
	DefaultGRPCEndpoint = "localhost:4317"
	DefaultHTTPEndpoint = "localhost:4318"
)

// Signal names used in OTEL_EXPORTER_OTLP_<SIGNAL>_ENDPOINT.
const (
	SignalMetrics = "METRICS"
	SignalTraces  = "TRACES"
)

// Endpoint resolves the collector address for signal. The signal specific
// variable wins over OTEL_EXPORTER_OTLP_ENDPOINT, which wins over the
// protocol default.
func Endpoint(signal, protocol string) string {
	if ep := os.Getenv("OTEL_EXPORTER_OTLP_" + signal + "_ENDPOINT"); ep != "" {
		return ep
	}
	if ep := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); ep != "" {
		return ep
	}
	if protocol == ProtocolHTTP {
		return DefaultHTTPEndpoint
	}
	return DefaultGRPCEndpoint
}

// ResourceConfig names the service reported with every signal.
type ResourceConfig struct {
	ServiceName      string
	ServiceNamespace string
	ServiceVersion   string
	// Attributes are applied last and override OTEL_RESOURCE_ATTRIBUTES.
	Attributes []attribute.KeyValue
}

// DefaultResourceConfig returns the mteval service identity.
func DefaultResourceConfig() ResourceConfig {
	return ResourceConfig{
		ServiceName:      ServiceName,
		ServiceNamespace: ServiceNamespace,
		ServiceVersion:   ServiceVersion,
	}
}

// NewResource builds the OpenTelemetry resource. OTEL_SERVICE_NAME and
// OTEL_RESOURCE_ATTRIBUTES override the configured service identity.
func NewResource(ctx context.Context, cfg ResourceConfig) (*resource.Resource, error) {
	opts := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceNamespace(cfg.ServiceNamespace),
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
	}
	if len(cfg.Attributes) > 0 {
		opts = append(opts, resource.WithAttributes(cfg.Attributes...))
	}
	return resource.New(ctx, opts...)
}
