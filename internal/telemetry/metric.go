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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Meter and instrument names.
const (
	MeterNameEvaluation = "trpc.mteval.evaluation"

	MetricRowsEvaluated = "mteval.rows.evaluated"
	MetricRowsSkipped   = "mteval.rows.skipped"
	MetricScore         = "mteval.score"
	MetricRowDuration   = "mteval.row.duration"
)

// ScoreBuckets are the default histogram boundaries for metric scores.
var ScoreBuckets = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Float64Recorder is satisfied by noop histograms and Histogram.
type Float64Recorder interface {
	Record(ctx context.Context, value float64, opts ...metric.RecordOption)
}

var (
	MeterProvider metric.MeterProvider = noop.NewMeterProvider()

	EvaluationMeter        metric.Meter        = MeterProvider.Meter(MeterNameEvaluation)
	MetricRowsEvaluatedCnt metric.Int64Counter = noop.Int64Counter{}
	MetricRowsSkippedCnt   metric.Int64Counter = noop.Int64Counter{}
	MetricScoreValue       Float64Recorder     = noop.Float64Histogram{}
	MetricRowDurationValue Float64Recorder     = noop.Float64Histogram{}
)

// IncRowsEvaluated counts a scored row.
func IncRowsEvaluated(ctx context.Context) {
	MetricRowsEvaluatedCnt.Add(ctx, 1)
}

// IncRowsSkipped counts a row skipped for a schema mismatch.
func IncRowsSkipped(ctx context.Context) {
	MetricRowsSkippedCnt.Add(ctx, 1)
}

// RecordScore records one metric value for one hypothesis label.
func RecordScore(ctx context.Context, metricName, label string, value float64) {
	MetricScoreValue.Record(ctx, value,
		metric.WithAttributes(
			attribute.String(KeyMetric, metricName),
			attribute.String(KeyLabel, label),
		))
}

// RecordRowDuration records the time spent scoring one row.
func RecordRowDuration(ctx context.Context, d time.Duration) {
	MetricRowDurationValue.Record(ctx, d.Seconds())
}
