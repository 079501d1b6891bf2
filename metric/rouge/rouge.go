//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package rouge implements ROUGE-L, the longest-common-subsequence F-measure.
package rouge

import "trpc.group/trpc-go/trpc-mteval/metric"

// Score holds ROUGE-L precision, recall and F-measure, each in [0, 1].
type Score struct {
	Precision float64
	Recall    float64
	FMeasure  float64
}

// Scorer computes ROUGE-L.
type Scorer struct {
	opts *options
}

var _ metric.Scorer = (*Scorer)(nil)

// New creates a ROUGE-L scorer. Tokens are stemmed and beta is 1 by default.
func New(opt ...Option) *Scorer {
	return &Scorer{opts: newOptions(opt...)}
}

// Score implements metric.Scorer. It returns the F-measure scaled to [0, 100].
func (s *Scorer) Score(reference, hypothesis string) float64 {
	return metric.Clamp(s.Compute(reference, hypothesis).FMeasure * metric.MaxScore)
}

// Compute returns precision, recall and F-measure for the pair.
func (s *Scorer) Compute(reference, hypothesis string) Score {
	ref := s.opts.tokenizer.Tokenize(reference)
	hyp := s.opts.tokenizer.Tokenize(hypothesis)
	if len(ref) == 0 || len(hyp) == 0 {
		return Score{}
	}
	lcs := float64(lcsLength(ref, hyp))
	p := lcs / float64(len(hyp))
	r := lcs / float64(len(ref))
	return Score{Precision: p, Recall: r, FMeasure: metric.FBeta(p, r, s.opts.beta)}
}

// lcsLength computes the longest common subsequence length with two rolling rows.
func lcsLength(ref, hyp []string) int {
	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)
	for i := 1; i <= len(ref); i++ {
		for j := 1; j <= len(hyp); j++ {
			if ref[i-1] == hyp[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(hyp)]
}
