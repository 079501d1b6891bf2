//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package meteor

import (
	"trpc.group/trpc-go/trpc-mteval/stem"
	"trpc.group/trpc-go/trpc-mteval/tokenizer"
)

const (
	defaultAlpha = 0.9
	defaultBeta  = 3.0
	defaultGamma = 0.5
)

type options struct {
	alpha     float64
	beta      float64
	gamma     float64
	stemmer   func(string) string
	synonyms  SynonymSource
	tokenizer tokenizer.Tokenizer
}

func newOptions(opt ...Option) *options {
	opts := &options{
		alpha:     defaultAlpha,
		beta:      defaultBeta,
		gamma:     defaultGamma,
		stemmer:   stem.Porter,
		tokenizer: tokenizer.NewWord(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures METEOR.
type Option func(*options)

// WithAlpha sets the precision weight of the F-mean, in (0, 1).
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		if alpha > 0 && alpha < 1 {
			o.alpha = alpha
		}
	}
}

// WithBeta sets the fragmentation exponent.
func WithBeta(beta float64) Option {
	return func(o *options) {
		if beta > 0 {
			o.beta = beta
		}
	}
}

// WithGamma sets the maximum fragmentation penalty, in [0, 1].
func WithGamma(gamma float64) Option {
	return func(o *options) {
		if gamma >= 0 && gamma <= 1 {
			o.gamma = gamma
		}
	}
}

// WithStemmer sets the stem stage function. Nil disables the stage.
func WithStemmer(stemmer func(string) string) Option {
	return func(o *options) {
		o.stemmer = stemmer
	}
}

// WithSynonyms enables the synonym stage.
func WithSynonyms(src SynonymSource) Option {
	return func(o *options) {
		o.synonyms = src
	}
}

// WithTokenizer overrides the word tokenizer.
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}
