//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of metric scorers.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"trpc.group/trpc-go/trpc-mteval/metric"
	"trpc.group/trpc-go/trpc-mteval/metric/bleu"
	"trpc.group/trpc-go/trpc-mteval/metric/chrf"
	"trpc.group/trpc-go/trpc-mteval/metric/meteor"
	"trpc.group/trpc-go/trpc-mteval/metric/rouge"
)

// Metric is a named scorer.
type Metric struct {
	Name   string
	Scorer metric.Scorer
}

// Registry defines the interface for the metric registry.
type Registry interface {
	// Register adds or replaces a scorer. New names are appended to the order.
	Register(name string, s metric.Scorer) error
	// Get retrieves a scorer by name.
	Get(name string) (metric.Scorer, error)
	// List returns registered names in registration order.
	List() []string
	// Resolve returns the named metrics in the given order, or every metric when
	// names is empty.
	Resolve(names ...string) ([]Metric, error)
}

type registry struct {
	mu      sync.RWMutex
	order   []string
	scorers map[string]metric.Scorer
}

// New creates a registry holding the four built-in metrics.
// meteorOpts configure the METEOR scorer, e.g. a synonym table.
func New(meteorOpts ...meteor.Option) Registry {
	r := &registry{scorers: make(map[string]metric.Scorer)}
	_ = r.Register(metric.NameBLEU, bleu.New())
	_ = r.Register(metric.NameROUGEL, rouge.New())
	_ = r.Register(metric.NameChrF, chrf.New())
	_ = r.Register(metric.NameMETEOR, meteor.New(meteorOpts...))
	return r
}

// Register registers a scorer under name.
func (r *registry) Register(name string, s metric.Scorer) error {
	if s == nil {
		return errors.New("scorer is nil")
	}
	if name == "" {
		return errors.New("metric name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.scorers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.scorers[name] = s
	return nil
}

// Get returns os.ErrNotExist when the metric is not registered.
func (r *registry) Get(name string) (metric.Scorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.scorers[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("get metric %s: %w", name, os.ErrNotExist)
}

func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func (r *registry) Resolve(names ...string) ([]Metric, error) {
	if len(names) == 0 {
		names = r.List()
	}
	seen := make(map[string]bool, len(names))
	out := make([]Metric, 0, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("metric %s listed twice", name)
		}
		seen[name] = true
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Metric{Name: name, Scorer: s})
	}
	return out, nil
}
