//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation scores every hypothesis of every row against the row's
// reference and assembles the results into a Table.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"trpc.group/trpc-go/trpc-mteval/dataset"
	itelemetry "trpc.group/trpc-go/trpc-mteval/internal/telemetry"
	"trpc.group/trpc-go/trpc-mteval/log"
	"trpc.group/trpc-go/trpc-mteval/metric"
	"trpc.group/trpc-go/trpc-mteval/metric/registry"
	"trpc.group/trpc-go/trpc-mteval/schema"
	mtrace "trpc.group/trpc-go/trpc-mteval/telemetry/trace"
)

// ErrSchemaMismatch marks a row whose field count differs from the schema.
var ErrSchemaMismatch = errors.New("schema mismatch")

// SkipError reports a row that was not scored. It unwraps to ErrSchemaMismatch.
type SkipError struct {
	Position int
	Line     int
	Fields   []string
	Expected int
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("row %d (line %d) has %d fields, want %d: %q",
		e.Position, e.Line, len(e.Fields), e.Expected, e.Fields)
}

// Unwrap returns ErrSchemaMismatch.
func (e *SkipError) Unwrap() error {
	return ErrSchemaMismatch
}

// HypothesisResult holds the scores of one hypothesis column.
type HypothesisResult struct {
	Label  string          `json:"label"`
	Scores metric.ScoreSet `json:"scores"`
}

// Row is a scored data row.
type Row struct {
	// Position is the 1-based data row number used in reports.
	Position int
	// Line is the physical line the row starts on.
	Line int
	// Fields are the original field values.
	Fields []string
	// Results holds one entry per hypothesis column, in schema order.
	Results []HypothesisResult
}

// Evaluator scores rows under a fixed schema and metric list.
// It is safe for concurrent use.
type Evaluator struct {
	schema      *schema.Schema
	metrics     []registry.Metric
	parallelism int
}

// New creates an Evaluator. The schema is validated here, before any row is read.
func New(s *schema.Schema, opt ...Option) (*Evaluator, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is nil", schema.ErrConfiguration)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts := newOptions(opt...)
	if opts.parallelism <= 0 {
		return nil, fmt.Errorf("%w: parallelism must be greater than 0", schema.ErrConfiguration)
	}
	metrics := opts.metrics
	if len(metrics) == 0 {
		var err error
		if metrics, err = registry.New().Resolve(); err != nil {
			return nil, fmt.Errorf("resolve default metrics: %w", err)
		}
	}
	for _, m := range metrics {
		if m.Scorer == nil {
			return nil, fmt.Errorf("%w: metric %s has no scorer", schema.ErrConfiguration, m.Name)
		}
	}
	return &Evaluator{
		schema:      s,
		metrics:     metrics,
		parallelism: opts.parallelism,
	}, nil
}

// Schema returns the schema rows are evaluated under.
func (e *Evaluator) Schema() *schema.Schema {
	return e.schema
}

// MetricNames returns the configured metric names in reporting order.
func (e *Evaluator) MetricNames() []string {
	names := make([]string, len(e.metrics))
	for i, m := range e.metrics {
		names[i] = m.Name
	}
	return names
}

// EvaluateRow scores one record. A record with the wrong field count yields
// a *SkipError and no row.
func (e *Evaluator) EvaluateRow(ctx context.Context, rec dataset.Record) (*Row, error) {
	if len(rec.Fields) != e.schema.ColumnCount {
		return nil, &SkipError{
			Position: rec.Position,
			Line:     rec.Line,
			Fields:   rec.Fields,
			Expected: e.schema.ColumnCount,
		}
	}
	ctx, span := mtrace.Tracer.Start(ctx, itelemetry.SpanNameEvaluateRow,
		trace.WithAttributes(
			attribute.Int(itelemetry.KeyPosition, rec.Position),
			attribute.Int(itelemetry.KeyLine, rec.Line),
		))
	defer span.End()
	start := time.Now()

	reference := rec.Fields[e.schema.Reference]
	row := &Row{
		Position: rec.Position,
		Line:     rec.Line,
		Fields:   rec.Fields,
		Results:  make([]HypothesisResult, len(e.schema.Hypotheses)),
	}
	for i, h := range e.schema.Hypotheses {
		hypothesis := rec.Fields[h.Index]
		scores := make(metric.ScoreSet, len(e.metrics))
		for j, m := range e.metrics {
			v := e.score(ctx, m, reference, hypothesis)
			scores[j] = metric.Score{Metric: m.Name, Value: v}
			itelemetry.RecordScore(ctx, m.Name, h.Label, v)
		}
		row.Results[i] = HypothesisResult{Label: h.Label, Scores: scores}
		log.DebugfContext(ctx, "row %d %s: %v", rec.Position, h.Label, scores)
	}
	itelemetry.RecordRowDuration(ctx, time.Since(start))
	itelemetry.IncRowsEvaluated(ctx)
	return row, nil
}

// score runs one scorer. A panicking scorer yields 0 for that metric only.
func (e *Evaluator) score(ctx context.Context, m registry.Metric, reference, hypothesis string) (v float64) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorfContext(ctx, "metric %s panicked: %v", m.Name, r)
			v = 0
		}
	}()
	return metric.Clamp(m.Scorer.Score(reference, hypothesis))
}

// Evaluate scores every record of t. Mismatched rows are logged and listed in
// Table.Skipped; the run continues. Rows keep their input order whatever the
// parallelism. A header too short for the schema fails before any row is scored.
func (e *Evaluator) Evaluate(ctx context.Context, t *dataset.Table) (*Table, error) {
	if t == nil {
		return nil, errors.New("dataset is nil")
	}
	if err := e.schema.ValidateHeader(t.Header); err != nil {
		return nil, err
	}
	ctx, span := mtrace.Tracer.Start(ctx, itelemetry.SpanNameEvaluate)
	defer span.End()

	rows := make([]*Row, len(t.Records))
	errs := make([]error, len(t.Records))
	var err error
	if e.parallelism > 1 && len(t.Records) > 1 {
		err = e.evaluateParallel(ctx, t.Records, rows, errs)
	} else {
		err = e.evaluateSequential(ctx, t.Records, rows, errs)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := &Table{
		Header:  t.Header,
		Labels:  e.schema.Labels(),
		Metrics: e.MetricNames(),
		Rows:    make([]*Row, 0, len(t.Records)),
	}
	for i, rowErr := range errs {
		if rowErr == nil {
			out.Rows = append(out.Rows, rows[i])
			continue
		}
		var skip *SkipError
		if !errors.As(rowErr, &skip) {
			span.SetStatus(codes.Error, rowErr.Error())
			return nil, rowErr
		}
		log.WarnfContext(ctx, "skipping %v", skip)
		itelemetry.IncRowsSkipped(ctx)
		out.Skipped = append(out.Skipped, SkippedRow{
			Position: skip.Position,
			Line:     skip.Line,
			Fields:   skip.Fields,
			Reason:   skip.Error(),
		})
	}
	span.SetAttributes(
		attribute.Int(itelemetry.KeyRows, len(out.Rows)),
		attribute.Int(itelemetry.KeySkipped, len(out.Skipped)),
	)
	log.InfofContext(ctx, "evaluated %d rows, skipped %d", len(out.Rows), len(out.Skipped))
	return out, nil
}

func (e *Evaluator) evaluateSequential(ctx context.Context, records []dataset.Record, rows []*Row, errs []error) error {
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows[i], errs[i] = e.EvaluateRow(ctx, rec)
	}
	return nil
}

func (e *Evaluator) evaluateParallel(ctx context.Context, records []dataset.Record, rows []*Row, errs []error) error {
	pool, err := createRowPool(e.parallelism)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}
		param := rowParamPool.Get().(*rowParam)
		param.idx = i
		param.ctx = ctx
		param.record = rec
		param.evaluator = e
		param.rows = rows
		param.errs = errs
		param.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			rowParamPool.Put(param)
			wg.Wait()
			return fmt.Errorf("submit row %d: %w", rec.Position, err)
		}
	}
	wg.Wait()
	return ctx.Err()
}
