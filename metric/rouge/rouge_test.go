//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"trpc.group/trpc-go/trpc-mteval/tokenizer"
)

// TestScorePerfectMatch verifies identical text scores 100.
func TestScorePerfectMatch(t *testing.T) {
	assert.Equal(t, 100.0, New().Score("the cat sat on the mat", "the cat sat on the mat"))
}

// TestScoreDisjointAndEmpty verifies no overlap or empty input scores 0.
func TestScoreDisjointAndEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, 0.0, s.Score("apple banana cherry", "dog elephant fox"))
	assert.Equal(t, 0.0, s.Score("apple", ""))
	assert.Equal(t, 0.0, s.Score("", "apple"))
	assert.Equal(t, 0.0, s.Score("apple", "!!!"))
}

// TestComputeNonConsecutive verifies the LCS need not be contiguous.
func TestComputeNonConsecutive(t *testing.T) {
	got := New().Compute("a b c d", "a x c y")
	assert.InDelta(t, 0.5, got.Precision, 1e-9)
	assert.InDelta(t, 0.5, got.Recall, 1e-9)
	assert.InDelta(t, 0.5, got.FMeasure, 1e-9)
}

// TestScoreStemming verifies stemmed tokens match inflected forms.
func TestScoreStemming(t *testing.T) {
	ref, hyp := "the cats are running", "the cat is run"
	assert.InDelta(t, 75.0, New().Score(ref, hyp), 1e-9)
	assert.InDelta(t, 25.0, New(WithStemmer(false)).Score(ref, hyp), 1e-9)
}

// TestScoreBeta verifies beta shifts weight towards recall.
func TestScoreBeta(t *testing.T) {
	assert.InDelta(t, 66.67, New().Score("a b c d", "a b"), 0.01)
	assert.InDelta(t, 55.56, New(WithBeta(2)).Score("a b c d", "a b"), 0.01)
}

// TestWithTokenizer verifies a custom tokenizer replaces the default.
func TestWithTokenizer(t *testing.T) {
	s := New(WithTokenizer(tokenizer.Func(strings.Fields)))
	assert.InDelta(t, 50.0, s.Score("Cat dog", "cat dog"), 1e-9)
}

// TestLCSLength verifies the rolling-row DP against known sequences.
func TestLCSLength(t *testing.T) {
	split := strings.Fields
	assert.Equal(t, 4, lcsLength(split("a b c b d a b"), split("b d c a b a")))
	assert.Equal(t, 0, lcsLength(nil, split("a")))
	assert.Equal(t, 3, lcsLength(split("x y z"), split("x y z")))
}
