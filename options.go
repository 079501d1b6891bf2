//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package mteval

import (
	"io"
	"os"

	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
	"trpc.group/trpc-go/trpc-mteval/metric/meteor"
	"trpc.group/trpc-go/trpc-mteval/schema"
)

type options struct {
	schema        *schema.Schema
	reportWriter  io.Writer
	parallelism   int
	metricNames   []string
	synonyms      meteor.SynonymSource
	resultManager evalresult.Manager
	outputPath    string
}

func newOptions(opt ...Option) *options {
	opts := &options{
		schema:       schema.Default(),
		reportWriter: os.Stdout,
		parallelism:  1,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures Run.
type Option func(*options)

// WithSchema sets the column layout. The default is the gpt-google preset.
func WithSchema(s *schema.Schema) Option {
	return func(o *options) {
		o.schema = s
	}
}

// WithReportWriter sets where report mode writes. The default is stdout.
func WithReportWriter(w io.Writer) Option {
	return func(o *options) {
		o.reportWriter = w
	}
}

// WithParallelism scores up to n rows at once.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMetrics selects metrics by name, in reporting order.
// The default is bleu, rougeL, chrf, meteor.
func WithMetrics(names ...string) Option {
	return func(o *options) {
		o.metricNames = append(o.metricNames, names...)
	}
}

// WithSynonyms enables the METEOR synonym stage.
func WithSynonyms(src meteor.SynonymSource) Option {
	return func(o *options) {
		o.synonyms = src
	}
}

// WithResultManager stores every successful run through m.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.resultManager = m
	}
}

// WithOutputPath overrides where augmented mode writes.
// The default inserts _with_scores before the input's extension.
func WithOutputPath(path string) Option {
	return func(o *options) {
		o.outputPath = path
	}
}
