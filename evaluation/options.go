//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"trpc.group/trpc-go/trpc-mteval/metric/registry"
)

type options struct {
	metrics     []registry.Metric
	parallelism int
}

func newOptions(opt ...Option) *options {
	opts := &options{
		parallelism: 1,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Evaluator.
type Option func(*options)

// WithMetrics sets the metrics applied to every hypothesis, in reporting order.
// Without it every built-in metric is used.
func WithMetrics(metrics []registry.Metric) Option {
	return func(o *options) {
		o.metrics = append(o.metrics, metrics...)
	}
}

// WithParallelism sets how many rows are scored at once. 1 scores rows
// sequentially on the calling goroutine.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
