//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the process-wide instruments used while scoring.
// Every instrument is a noop until telemetry/metric or telemetry/trace
// installs a real provider.
package telemetry

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcDial is a package-level variable to allow test injection of a custom dialer.
var grpcDial = grpc.Dial

// telemetry service constants.
const (
	ServiceName      = "mteval"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "trpc-go-mteval"
	InstrumentName   = "trpc.mteval"

	SpanNameEvaluate    = "mteval.evaluate"
	SpanNameEvaluateRow = "mteval.evaluate_row"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC string = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP string = "http"
)

// Attribute keys.
const (
	KeyMetric   = "mteval.metric"
	KeyLabel    = "mteval.label"
	KeyPosition = "mteval.row.position"
	KeyLine     = "mteval.row.line"
	KeyRows     = "mteval.rows"
	KeySkipped  = "mteval.rows.skipped"
)

// NewGRPCConn creates a new gRPC connection to the OpenTelemetry Collector.
func NewGRPCConn(endpoint string) (*grpc.ClientConn, error) {
	// Note the use of insecure transport here. TLS is recommended in production.
	conn, err := grpcDial(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}
	return conn, nil
}
