//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package chrf implements the character n-gram F-score (chrF) and its word
// n-gram extension chrF++.
//
// Whitespace is removed before character n-grams are extracted, so n-grams may
// span word boundaries but never contain a space. Precision and recall are
// averaged over the orders both sides are long enough to form, then combined
// with F-beta.
package chrf

import (
	"strings"
	"unicode"

	"trpc.group/trpc-go/trpc-mteval/metric"
	"trpc.group/trpc-go/trpc-mteval/tokenizer"
)

// Scorer computes chrF.
type Scorer struct {
	opts *options
}

var _ metric.Scorer = (*Scorer)(nil)

// New creates a chrF scorer with character orders 1..6, no word n-grams and beta 2.
func New(opt ...Option) *Scorer {
	return &Scorer{opts: newOptions(opt...)}
}

// stat holds n-gram counts of one order.
type stat struct {
	hyp, ref, match int
}

// Score implements metric.Scorer.
func (s *Scorer) Score(reference, hypothesis string) float64 {
	reference = tokenizer.Normalize(reference)
	hypothesis = tokenizer.Normalize(hypothesis)
	if reference == "" || hypothesis == "" {
		return 0
	}
	stats := make([]stat, 0, s.opts.charOrder+s.opts.wordOrder)
	refChars := s.chars(reference)
	hypChars := s.chars(hypothesis)
	for n := 1; n <= s.opts.charOrder; n++ {
		stats = append(stats, compare(charNGrams(refChars, n), charNGrams(hypChars, n)))
	}
	if s.opts.wordOrder > 0 {
		refWords := words(reference)
		hypWords := words(hypothesis)
		for n := 1; n <= s.opts.wordOrder; n++ {
			stats = append(stats, compare(wordNGrams(refWords, n), wordNGrams(hypWords, n)))
		}
	}
	return metric.Clamp(fScore(stats, s.opts.beta) * metric.MaxScore)
}

func (s *Scorer) chars(text string) []rune {
	if s.opts.whitespace {
		return []rune(text)
	}
	return []rune(strings.Join(strings.Fields(text), ""))
}

func fScore(stats []stat, beta float64) float64 {
	var precision, recall float64
	effective := 0
	for _, st := range stats {
		if st.hyp == 0 || st.ref == 0 {
			continue
		}
		precision += float64(st.match) / float64(st.hyp)
		recall += float64(st.match) / float64(st.ref)
		effective++
	}
	if effective == 0 {
		return 0
	}
	return metric.FBeta(precision/float64(effective), recall/float64(effective), beta)
}

func compare(ref, hyp map[string]int) stat {
	var st stat
	for _, c := range ref {
		st.ref += c
	}
	for gram, c := range hyp {
		st.hyp += c
		st.match += min(c, ref[gram])
	}
	return st
}

func charNGrams(chars []rune, n int) map[string]int {
	out := make(map[string]int)
	for i := 0; i+n <= len(chars); i++ {
		out[string(chars[i:i+n])]++
	}
	return out
}

func wordNGrams(tokens []string, n int) map[string]int {
	out := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		out[strings.Join(tokens[i:i+n], " ")]++
	}
	return out
}

// words splits on whitespace and detaches one leading or trailing punctuation
// mark from each word.
func words(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		r := []rune(w)
		if len(r) < 2 {
			out = append(out, w)
			continue
		}
		switch {
		case unicode.IsPunct(r[len(r)-1]):
			out = append(out, string(r[:len(r)-1]), string(r[len(r)-1]))
		case unicode.IsPunct(r[0]):
			out = append(out, string(r[0]), string(r[1:]))
		default:
			out = append(out, w)
		}
	}
	return out
}
