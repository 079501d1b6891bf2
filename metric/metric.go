//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package metric defines the scoring capability shared by every metric.
//
// A Scorer reduces a (reference, hypothesis) text pair to a score in [0, 100].
// Scorers hold only immutable configuration and are safe for concurrent use.
package metric

import "math"

// Metric names, in the order they are reported.
const (
	NameBLEU   = "bleu"
	NameROUGEL = "rougeL"
	NameChrF   = "chrf"
	NameMETEOR = "meteor"
)

// DefaultNames lists every built-in metric in reporting order.
var DefaultNames = []string{NameBLEU, NameROUGEL, NameChrF, NameMETEOR}

// Titles maps metric names to the titles used in headers and reports.
var Titles = map[string]string{
	NameBLEU:   "BLEU",
	NameROUGEL: "ROUGE-L",
	NameChrF:   "chrF",
	NameMETEOR: "METEOR",
}

// Title returns the display title of a metric, or the name when none is known.
func Title(name string) string {
	if t, ok := Titles[name]; ok {
		return t
	}
	return name
}

// MaxScore is the upper bound of every score.
const MaxScore = 100.0

// Scorer scores a hypothesis against a reference.
type Scorer interface {
	// Score returns a value in [0, 100]. Empty input scores 0.
	Score(reference, hypothesis string) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(reference, hypothesis string) float64

// Score calls f(reference, hypothesis).
func (f ScorerFunc) Score(reference, hypothesis string) float64 {
	return f(reference, hypothesis)
}

// Clamp maps v into [0, 100]. NaN becomes 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > MaxScore:
		return MaxScore
	}
	return v
}

// Score is one metric value.
type Score struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// ScoreSet holds one value per metric in reporting order.
type ScoreSet []Score

// Get returns the value recorded for name.
func (s ScoreSet) Get(name string) (float64, bool) {
	for _, sc := range s {
		if sc.Metric == name {
			return sc.Value, true
		}
	}
	return 0, false
}

// FBeta combines precision and recall, weighting recall beta times as much as precision.
// It returns 0 when both are 0.
func FBeta(precision, recall, beta float64) float64 {
	b2 := beta * beta
	denom := b2*precision + recall
	if denom <= 0 {
		return 0
	}
	return (1 + b2) * precision * recall / denom
}
