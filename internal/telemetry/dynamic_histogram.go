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
	"sync"

	"go.opentelemetry.io/otel/metric"
)

// Histogram is a Float64Histogram whose bucket boundaries can be replaced at
// runtime. Replacing the boundaries recreates the instrument; recorded data
// is not migrated.
type Histogram struct {
	mu          sync.RWMutex
	histogram   metric.Float64Histogram
	meter       metric.Meter
	name        string
	description string
	unit        string
	boundaries  []float64
}

// NewHistogram creates a histogram on meter.
func NewHistogram(meter metric.Meter, name, description, unit string, boundaries []float64) (*Histogram, error) {
	h := &Histogram{meter: meter, name: name, description: description, unit: unit}
	if err := h.SetBuckets(boundaries); err != nil {
		return nil, err
	}
	return h, nil
}

// Record records value. It is safe for concurrent use.
func (h *Histogram) Record(ctx context.Context, value float64, opts ...metric.RecordOption) {
	h.mu.RLock()
	inner := h.histogram
	h.mu.RUnlock()
	inner.Record(ctx, value, opts...)
}

// Boundaries returns the current bucket boundaries.
func (h *Histogram) Boundaries() []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]float64(nil), h.boundaries...)
}

// SetBuckets recreates the instrument with new boundaries. Empty boundaries
// fall back to the SDK defaults.
func (h *Histogram) SetBuckets(boundaries []float64) error {
	opts := []metric.Float64HistogramOption{
		metric.WithDescription(h.description),
		metric.WithUnit(h.unit),
	}
	if len(boundaries) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(boundaries...))
	}
	inner, err := h.meter.Float64Histogram(h.name, opts...)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.histogram = inner
	h.boundaries = append([]float64(nil), boundaries...)
	h.mu.Unlock()
	return nil
}
