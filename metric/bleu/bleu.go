//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package bleu implements sentence-level BLEU.
//
// Modified n-gram precisions for orders 1..4 are combined by a uniform
// geometric mean and multiplied by the brevity penalty. Orders the hypothesis
// is too short to form are left out of the mean. Orders with no match are
// smoothed, but a hypothesis without a single unigram match scores 0.
package bleu

import (
	"math"
	"strings"

	"trpc.group/trpc-go/trpc-mteval/metric"
)

// Scorer computes sentence BLEU.
type Scorer struct {
	opts *options
}

var _ metric.Scorer = (*Scorer)(nil)

// New creates a BLEU scorer.
func New(opt ...Option) *Scorer {
	return &Scorer{opts: newOptions(opt...)}
}

// Score implements metric.Scorer.
func (s *Scorer) Score(reference, hypothesis string) float64 {
	hyp := s.opts.tokenizer.Tokenize(hypothesis)
	ref := s.opts.tokenizer.Tokenize(reference)
	return score(ref, hyp, s.opts)
}

func score(ref, hyp []string, opts *options) float64 {
	if len(hyp) == 0 || len(ref) == 0 {
		return 0
	}
	matches, totals := counts(ref, hyp, opts.maxOrder)
	if matches[0] == 0 {
		return 0
	}

	logSum := 0.0
	order := 0
	expDivisor := 1.0
	for n := 0; n < opts.maxOrder; n++ {
		if totals[n] == 0 {
			if !opts.effectiveOrder {
				return 0
			}
			break
		}
		order = n + 1
		hit, total := float64(matches[n]), float64(totals[n])
		if opts.smoothing == SmoothAddK && n > 0 {
			hit += opts.smoothValue
			total += opts.smoothValue
		}
		var p float64
		switch {
		case hit > 0:
			p = hit / total
		case opts.smoothing == SmoothExp:
			expDivisor *= 2
			p = 1 / (expDivisor * total)
		case opts.smoothing == SmoothFloor:
			p = opts.smoothValue / total
		default:
			return 0
		}
		logSum += math.Log(p)
	}

	bp := 1.0
	if len(hyp) < len(ref) {
		bp = math.Exp(1 - float64(len(ref))/float64(len(hyp)))
	}
	return metric.Clamp(bp * math.Exp(logSum/float64(order)) * metric.MaxScore)
}

// counts returns clipped n-gram matches and hypothesis n-gram totals per order.
func counts(ref, hyp []string, maxOrder int) (matches, totals []int) {
	matches = make([]int, maxOrder)
	totals = make([]int, maxOrder)
	for n := 1; n <= maxOrder; n++ {
		if len(hyp) < n {
			break
		}
		refGrams := ngrams(ref, n)
		hypGrams := ngrams(hyp, n)
		for gram, c := range hypGrams {
			matches[n-1] += min(c, refGrams[gram])
		}
		totals[n-1] = len(hyp) - n + 1
	}
	return matches, totals
}

func ngrams(tokens []string, n int) map[string]int {
	out := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		out[strings.Join(tokens[i:i+n], "\x00")]++
	}
	return out
}
