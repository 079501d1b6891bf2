//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package chrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScorePerfectMatch verifies identical text scores 100 for chrF and chrF++.
func TestScorePerfectMatch(t *testing.T) {
	const text = "the cat sat on the mat"
	assert.Equal(t, 100.0, New().Score(text, text))
	assert.Equal(t, 100.0, New(WithWordOrder(2)).Score(text, text))
}

// TestScoreEmpty verifies empty or blank input scores 0.
func TestScoreEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, 0.0, s.Score("", "abc"))
	assert.Equal(t, 0.0, s.Score("abc", ""))
	assert.Equal(t, 0.0, s.Score("abc", "   "))
}

// TestScoreDisjointWords verifies unrelated words only earn credit for shared letters.
func TestScoreDisjointWords(t *testing.T) {
	// Shared letters e, l, p, h, a, n and bigrams "le", "an" are all that match.
	assert.InDelta(t, 9.28, New().Score("apple banana cherry", "dog elephant fox"), 0.01)
	assert.Equal(t, 0.0, New().Score("abc", "xyz"))
}

// TestScoreEffectiveOrder verifies orders longer than the text are left out of the average.
func TestScoreEffectiveOrder(t *testing.T) {
	// Orders 1..3 exist: (2/3 + 1/2 + 0) / 3 for both precision and recall.
	assert.InDelta(t, 38.89, New().Score("abc", "abd"), 0.01)
}

// TestScoreWhitespace verifies whitespace is ignored unless requested.
func TestScoreWhitespace(t *testing.T) {
	assert.Equal(t, 100.0, New().Score("ab", "a b"))
	assert.InDelta(t, 45.45, New(WithWhitespace(true)).Score("ab", "a b"), 0.01)
}

// TestScoreBetaWeighting verifies a larger beta rewards recall over precision.
func TestScoreBetaWeighting(t *testing.T) {
	ref, hyp := "abcdef", "abc"
	highRecallWeight := New(WithBeta(3)).Score(ref, hyp)
	lowRecallWeight := New(WithBeta(0.5)).Score(ref, hyp)
	assert.Less(t, highRecallWeight, lowRecallWeight)
}

// TestWords verifies punctuation is detached from word edges.
func TestWords(t *testing.T) {
	assert.Equal(t, []string{"Hello", ",", "world", "!", "(", "x", "a"}, words("Hello, world! (x a"))
}
