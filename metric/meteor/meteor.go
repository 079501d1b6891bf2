//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package meteor implements METEOR, an alignment-based unigram F-mean with a
// fragmentation penalty.
//
// Tokens are lowercased and aligned in stages: exact form, Porter stem, then
// synonyms when a SynonymSource is configured. With P and R the aligned
// fractions of hypothesis and reference tokens:
//
//	Fmean   = P*R / (alpha*P + (1-alpha)*R)
//	penalty = min(1, gamma * (chunks/matches)^beta)
//	score   = 100 * Fmean * (1 - penalty)
//
// The defaults alpha=0.9, beta=3, gamma=0.5 weight recall nine times precision.
package meteor

import (
	"math"

	"trpc.group/trpc-go/trpc-mteval/metric"
	"trpc.group/trpc-go/trpc-mteval/tokenizer"
)

// Scorer computes METEOR.
type Scorer struct {
	opts *options
}

var _ metric.Scorer = (*Scorer)(nil)

// New creates a METEOR scorer.
func New(opt ...Option) *Scorer {
	return &Scorer{opts: newOptions(opt...)}
}

// Score implements metric.Scorer.
func (s *Scorer) Score(reference, hypothesis string) float64 {
	hyp := tokenizer.LowerAll(s.opts.tokenizer.Tokenize(hypothesis))
	ref := tokenizer.LowerAll(s.opts.tokenizer.Tokenize(reference))
	if len(hyp) == 0 || len(ref) == 0 {
		return 0
	}
	pairs := align(hyp, ref, s.stages(hyp, ref))
	m := float64(len(pairs))
	if m == 0 {
		return 0
	}
	p := m / float64(len(hyp))
	r := m / float64(len(ref))
	a := s.opts.alpha
	fmean := p * r / (a*p + (1-a)*r)
	frag := float64(countChunks(pairs)) / m
	penalty := math.Min(1, s.opts.gamma*math.Pow(frag, s.opts.beta))
	return metric.Clamp(fmean * (1 - penalty) * metric.MaxScore)
}

func (s *Scorer) stages(hyp, ref []string) []matcher {
	stages := []matcher{func(i, j int) bool { return hyp[i] == ref[j] }}
	if s.opts.stemmer != nil {
		hypStems := mapAll(hyp, s.opts.stemmer)
		refStems := mapAll(ref, s.opts.stemmer)
		stages = append(stages, func(i, j int) bool { return hypStems[i] == refStems[j] })
	}
	if s.opts.synonyms != nil {
		syn := s.opts.synonyms
		stages = append(stages, func(i, j int) bool { return syn.Synonymous(hyp[i], ref[j]) })
	}
	return stages
}

func mapAll(tokens []string, f func(string) string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = f(t)
	}
	return out
}
