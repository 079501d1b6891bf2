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
	"trpc.group/trpc-go/trpc-mteval/stem"
	"trpc.group/trpc-go/trpc-mteval/tokenizer"
)

// options holds configuration for ROUGE-L scoring.
type options struct {
	// useStemmer enables Porter stemming in the default tokenizer.
	useStemmer bool
	// beta weights recall against precision in the F-measure.
	beta float64
	// tokenizer overrides the default alphanumeric tokenizer when set.
	tokenizer tokenizer.Tokenizer
}

func newOptions(opt ...Option) *options {
	opts := &options{useStemmer: true, beta: 1}
	for _, o := range opt {
		o(opts)
	}
	if opts.tokenizer == nil {
		var stemmer func(string) string
		if opts.useStemmer {
			stemmer = stem.Porter
		}
		opts.tokenizer = tokenizer.NewAlnum(stemmer)
	}
	return opts
}

// Option configures ROUGE-L scoring.
type Option func(*options)

// WithStemmer enables or disables Porter stemming in the default tokenizer.
func WithStemmer(useStemmer bool) Option {
	return func(o *options) {
		o.useStemmer = useStemmer
	}
}

// WithBeta sets the F-measure beta. Non-positive values are ignored.
func WithBeta(beta float64) Option {
	return func(o *options) {
		if beta > 0 {
			o.beta = beta
		}
	}
}

// WithTokenizer replaces the default tokenizer. WithStemmer has no effect then.
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(o *options) {
		o.tokenizer = t
	}
}
