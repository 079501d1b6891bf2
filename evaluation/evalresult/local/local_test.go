//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-mteval/evaluation"
	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
	"trpc.group/trpc-go/trpc-mteval/metric"
)

func sampleResult() *evalresult.Result {
	return evalresult.New("in.csv", "report", &evaluation.Table{
		Labels:  []string{"GPT"},
		Metrics: []string{metric.NameBLEU},
		Rows: []*evaluation.Row{{
			Position: 1,
			Results: []evaluation.HypothesisResult{{
				Label:  "GPT",
				Scores: metric.ScoreSet{{Metric: metric.NameBLEU, Value: 12.5}},
			}},
		}},
		Skipped: []evaluation.SkippedRow{{Position: 2, Line: 3, Fields: []string{"x"}, Reason: "short"}},
	})
}

// TestLocalManagerSaveGetList verifies the round trip through the file system.
func TestLocalManagerSaveGetList(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	mgr := New(evalresult.WithBaseDir(dir)).(*manager)

	_, err := mgr.Save(ctx, nil)
	assert.Error(t, err)

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	res := sampleResult()
	id, err := mgr.Save(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, res.ID, id)
	assert.FileExists(t, mgr.resultPath(id))
	assert.NoFileExists(t, mgr.resultPath(id)+".tmp")

	got, err := mgr.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "in.csv", got.InputPath)
	assert.Equal(t, []string{"GPT"}, got.Labels)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, 12.5, got.Rows[0].Scores[0].Value)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, 2, got.Skipped[0].Position)
	assert.True(t, res.CreatedAt.Equal(got.CreatedAt))

	ids, err = mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, ids)
}

// TestLocalManagerAssignsID verifies results without an ID get one.
func TestLocalManagerAssignsID(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	res := sampleResult()
	res.ID = ""
	id, err := mgr.Save(context.Background(), res)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, res.ID)
}

// TestLocalManagerErrors verifies missing and malformed IDs.
func TestLocalManagerErrors(t *testing.T) {
	mgr := New(evalresult.WithBaseDir(t.TempDir()))
	ctx := context.Background()

	_, err := mgr.Get(ctx, "unknown")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = mgr.Get(ctx, "")
	assert.Error(t, err)

	_, err = mgr.Get(ctx, "../escape")
	assert.Error(t, err)

	res := sampleResult()
	res.ID = "a/b"
	_, err = mgr.Save(ctx, res)
	assert.Error(t, err)
}
