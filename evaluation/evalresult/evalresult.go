//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package evalresult defines persisted run results and the Manager that stores them.
package evalresult

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-mteval/evaluation"
	"trpc.group/trpc-go/trpc-mteval/metric"
)

// Result is the stored outcome of one run.
type Result struct {
	// ID uniquely identifies the result.
	ID string `json:"id"`
	// InputPath is the scored input file.
	InputPath string `json:"inputPath"`
	// Mode is the output mode of the run.
	Mode string `json:"mode"`
	// CreatedAt is when the result was assembled.
	CreatedAt time.Time `json:"createdAt"`
	// Metrics lists metric names in reporting order.
	Metrics []string `json:"metrics"`
	// Labels lists hypothesis labels in schema order.
	Labels []string `json:"labels"`
	// Rows holds one entry per scored row and label.
	Rows []RowResult `json:"rows"`
	// Skipped lists rows that did not match the schema.
	Skipped []evaluation.SkippedRow `json:"skipped,omitempty"`
	// Means holds the average of each metric per label, label-major.
	Means []MeanScore `json:"means,omitempty"`
}

// MeanScore is the average of one metric over all scored rows of one label.
type MeanScore struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

// RowResult is the scores of one hypothesis in one row.
type RowResult struct {
	Position int             `json:"position"`
	Label    string          `json:"label"`
	Scores   metric.ScoreSet `json:"scores"`
}

// New flattens a table into a Result with a fresh ID.
func New(inputPath, mode string, t *evaluation.Table) *Result {
	r := &Result{
		ID:        uuid.NewString(),
		InputPath: inputPath,
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
		Metrics:   append([]string(nil), t.Metrics...),
		Labels:    append([]string(nil), t.Labels...),
		Skipped:   append([]evaluation.SkippedRow(nil), t.Skipped...),
	}
	for _, label := range t.Labels {
		for _, m := range t.Metrics {
			if v, ok := t.Mean(m, label); ok {
				r.Means = append(r.Means, MeanScore{Metric: m, Label: label, Value: v})
			}
		}
	}
	for _, row := range t.Rows {
		for _, res := range row.Results {
			r.Rows = append(r.Rows, RowResult{
				Position: row.Position,
				Label:    res.Label,
				Scores:   res.Scores,
			})
		}
	}
	return r
}

// Manager defines the interface for managing run results.
type Manager interface {
	// Save stores a result and returns its ID. A result without an ID gets one.
	Save(ctx context.Context, result *Result) (string, error)
	// Get retrieves a result by ID. A missing result wraps os.ErrNotExist.
	Get(ctx context.Context, id string) (*Result, error)
	// List returns the IDs of all stored results.
	List(ctx context.Context) ([]string, error)
}
