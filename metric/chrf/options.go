//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package chrf

const (
	defaultCharOrder = 6
	defaultBeta      = 2.0
)

type options struct {
	charOrder  int
	wordOrder  int
	beta       float64
	whitespace bool
}

func newOptions(opt ...Option) *options {
	opts := &options{charOrder: defaultCharOrder, beta: defaultBeta}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures chrF.
type Option func(*options)

// WithCharOrder sets the highest character n-gram order. Values below 1 are ignored.
func WithCharOrder(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.charOrder = n
		}
	}
}

// WithWordOrder adds word n-grams up to order n (chrF++ uses 2).
func WithWordOrder(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.wordOrder = n
		}
	}
}

// WithBeta sets the recall weight. Non-positive values are ignored.
func WithBeta(beta float64) Option {
	return func(o *options) {
		if beta > 0 {
			o.beta = beta
		}
	}
}

// WithWhitespace keeps whitespace inside character n-grams.
func WithWhitespace(include bool) Option {
	return func(o *options) {
		o.whitespace = include
	}
}
