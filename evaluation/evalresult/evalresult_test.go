//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-mteval/evaluation"
	"trpc.group/trpc-go/trpc-mteval/metric"
)

// TestNewFlattensTable verifies one entry per row and label in table order.
func TestNewFlattensTable(t *testing.T) {
	scores := func(v float64) metric.ScoreSet { return metric.ScoreSet{{Metric: metric.NameBLEU, Value: v}} }
	tbl := &evaluation.Table{
		Labels:  []string{"A", "B"},
		Metrics: []string{metric.NameBLEU},
		Rows: []*evaluation.Row{
			{Position: 1, Results: []evaluation.HypothesisResult{{Label: "A", Scores: scores(1)}, {Label: "B", Scores: scores(2)}}},
			{Position: 3, Results: []evaluation.HypothesisResult{{Label: "A", Scores: scores(3)}, {Label: "B", Scores: scores(4)}}},
		},
		Skipped: []evaluation.SkippedRow{{Position: 2}},
	}
	r := New("in.csv", "augmented", tbl)
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "augmented", r.Mode)
	assert.False(t, r.CreatedAt.IsZero())
	require.Len(t, r.Rows, 4)
	assert.Equal(t, RowResult{Position: 3, Label: "A", Scores: scores(3)}, r.Rows[2])
	assert.Len(t, r.Skipped, 1)
	assert.Equal(t, []MeanScore{
		{Metric: metric.NameBLEU, Label: "A", Value: 2},
		{Metric: metric.NameBLEU, Label: "B", Value: 3},
	}, r.Means)
}

// TestNewWithoutRows verifies an empty table has no means.
func TestNewWithoutRows(t *testing.T) {
	r := New("in.csv", "report", &evaluation.Table{Labels: []string{"A"}, Metrics: []string{metric.NameBLEU}})
	assert.Empty(t, r.Rows)
	assert.Empty(t, r.Means)
}

// TestNewOptions verifies the default and overridden base directory.
func TestNewOptions(t *testing.T) {
	assert.Equal(t, DefaultBaseDir, NewOptions().BaseDir)
	assert.Equal(t, "x", NewOptions(WithBaseDir("x")).BaseDir)
}
