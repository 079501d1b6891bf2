//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package bleu

import "trpc.group/trpc-go/trpc-mteval/tokenizer"

// Smoothing selects how orders without any match are handled.
type Smoothing string

const (
	// SmoothExp halves the pseudo precision 1/total for each successive zero-match order.
	SmoothExp Smoothing = "exp"
	// SmoothFloor replaces a zero match count with a small constant.
	SmoothFloor Smoothing = "floor"
	// SmoothAddK adds a constant to matches and totals of orders 2 and up.
	SmoothAddK Smoothing = "add-k"
	// SmoothNone scores 0 as soon as one order has no match.
	SmoothNone Smoothing = "none"
)

const (
	defaultMaxOrder   = 4
	defaultFloorValue = 0.1
	defaultAddKValue  = 1.0
)

type options struct {
	maxOrder       int
	smoothing      Smoothing
	smoothValue    float64
	effectiveOrder bool
	tokenizer      tokenizer.Tokenizer
}

func newOptions(opt ...Option) *options {
	opts := &options{
		maxOrder:       defaultMaxOrder,
		smoothing:      SmoothExp,
		effectiveOrder: true,
		tokenizer:      tokenizer.NewMTEval13a(),
	}
	for _, o := range opt {
		o(opts)
	}
	if opts.smoothValue <= 0 {
		switch opts.smoothing {
		case SmoothFloor:
			opts.smoothValue = defaultFloorValue
		case SmoothAddK:
			opts.smoothValue = defaultAddKValue
		}
	}
	return opts
}

// Option configures the BLEU scorer.
type Option func(*options)

// WithMaxOrder sets the highest n-gram order. Values below 1 are ignored.
func WithMaxOrder(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxOrder = n
		}
	}
}

// WithSmoothing sets the smoothing method and its constant.
// A non-positive value selects the method's default (0.1 for floor, 1 for add-k).
func WithSmoothing(method Smoothing, value float64) Option {
	return func(o *options) {
		o.smoothing = method
		o.smoothValue = value
	}
}

// WithEffectiveOrder controls whether orders longer than the hypothesis are
// dropped from the mean. When disabled such hypotheses score 0.
func WithEffectiveOrder(enabled bool) Option {
	return func(o *options) {
		o.effectiveOrder = enabled
	}
}

// WithTokenizer overrides the default mteval-v13a tokenizer.
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}
