//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evalresult

// DefaultBaseDir is where results are stored when no directory is given.
const DefaultBaseDir = "mteval_results"

// Options configures a result manager.
type Options struct {
	BaseDir string
}

// NewOptions applies opt over the defaults.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		BaseDir: DefaultBaseDir,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a result manager.
type Option func(*Options)

// WithBaseDir overrides the default base directory used to store results.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}
