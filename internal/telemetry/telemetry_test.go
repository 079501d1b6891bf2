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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
)

// TestNewGRPCConn verifies the dialer receives the endpoint and its errors are wrapped.
func TestNewGRPCConn(t *testing.T) {
	tests := []struct {
		name    string
		dialErr error
	}{
		{name: "success"},
		{name: "dial failure", dialErr: errors.New("connection failed")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := grpcDial
			t.Cleanup(func() { grpcDial = orig })
			var target string
			var nOpts int
			grpcDial = func(tg string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
				target, nOpts = tg, len(opts)
				if tt.dialErr != nil {
					return nil, tt.dialErr
				}
				return &grpc.ClientConn{}, nil
			}

			conn, err := NewGRPCConn("collector:4317")
			assert.Equal(t, "collector:4317", target)
			assert.Equal(t, 1, nOpts)
			if tt.dialErr != nil {
				require.ErrorIs(t, err, tt.dialErr)
				assert.Nil(t, conn)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, conn)
		})
	}
}

// TestEndpoint verifies signal variables win over the generic one and the protocol default.
func TestEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	assert.Equal(t, DefaultGRPCEndpoint, Endpoint(SignalTraces, ProtocolGRPC))
	assert.Equal(t, DefaultHTTPEndpoint, Endpoint(SignalTraces, ProtocolHTTP))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "shared:4317")
	assert.Equal(t, "shared:4317", Endpoint(SignalTraces, ProtocolGRPC))

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "traces:4317")
	assert.Equal(t, "traces:4317", Endpoint(SignalTraces, ProtocolGRPC))
	assert.Equal(t, "shared:4317", Endpoint(SignalMetrics, ProtocolGRPC))
}

// TestNewResource verifies the service identity and extra attributes land on the resource.
func TestNewResource(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_RESOURCE_ATTRIBUTES", "")
	cfg := DefaultResourceConfig()
	cfg.Attributes = []attribute.KeyValue{attribute.String("deployment.environment", "test")}

	res, err := NewResource(context.Background(), cfg)
	require.NoError(t, err)
	set := res.Set()
	name, ok := set.Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, ServiceName, name.AsString())
	env, ok := set.Value("deployment.environment")
	require.True(t, ok)
	assert.Equal(t, "test", env.AsString())
}

// TestHistogramSetBuckets verifies boundaries are copied and replaced.
func TestHistogramSetBuckets(t *testing.T) {
	meter := sdkmetric.NewMeterProvider().Meter("test")
	bounds := []float64{0, 50, 100}
	h, err := NewHistogram(meter, "h", "test histogram", "1", bounds)
	require.NoError(t, err)
	bounds[0] = -1
	assert.Equal(t, []float64{0, 50, 100}, h.Boundaries())

	require.NoError(t, h.SetBuckets([]float64{1, 2}))
	assert.Equal(t, []float64{1, 2}, h.Boundaries())
	require.NoError(t, h.SetBuckets(nil))
	assert.Empty(t, h.Boundaries())
}

// TestRecordHelpers verifies the helpers feed the installed instruments.
func TestRecordHelpers(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter(MeterNameEvaluation)
	evaluated, err := meter.Int64Counter(MetricRowsEvaluated)
	require.NoError(t, err)
	score, err := NewHistogram(meter, MetricScore, "score", "1", ScoreBuckets)
	require.NoError(t, err)

	origCnt, origScore := MetricRowsEvaluatedCnt, MetricScoreValue
	t.Cleanup(func() { MetricRowsEvaluatedCnt, MetricScoreValue = origCnt, origScore })
	MetricRowsEvaluatedCnt, MetricScoreValue = evaluated, score

	ctx := context.Background()
	IncRowsEvaluated(ctx)
	IncRowsEvaluated(ctx)
	RecordScore(ctx, "bleu", "GPT", 42)
	RecordRowDuration(ctx, time.Millisecond)
	IncRowsSkipped(ctx)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	found := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		found[m.Name] = true
		switch data := m.Data.(type) {
		case metricdata.Sum[int64]:
			require.Len(t, data.DataPoints, 1)
			assert.Equal(t, int64(2), data.DataPoints[0].Value)
		case metricdata.Histogram[float64]:
			require.Len(t, data.DataPoints, 1)
			dp := data.DataPoints[0]
			assert.Equal(t, 42.0, dp.Sum)
			v, ok := dp.Attributes.Value(KeyMetric)
			require.True(t, ok)
			assert.Equal(t, "bleu", v.AsString())
			v, ok = dp.Attributes.Value(KeyLabel)
			require.True(t, ok)
			assert.Equal(t, "GPT", v.AsString())
		}
	}
	assert.True(t, found[MetricRowsEvaluated])
	assert.True(t, found[MetricScore])
}
