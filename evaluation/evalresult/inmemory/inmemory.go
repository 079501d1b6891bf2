//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for run results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
)

type manager struct {
	mu      sync.RWMutex
	results map[string]*evalresult.Result
}

// New creates an in-memory result manager.
func New() evalresult.Manager {
	return &manager{results: make(map[string]*evalresult.Result)}
}

func (m *manager) Save(_ context.Context, result *evalresult.Result) (string, error) {
	if result == nil {
		return "", errors.New("result is nil")
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	c := *result
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[c.ID] = &c
	return c.ID, nil
}

func (m *manager) Get(_ context.Context, id string) (*evalresult.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.results[id]
	if !ok {
		return nil, fmt.Errorf("get result %s: %w", id, os.ErrNotExist)
	}
	c := *res
	return &c, nil
}

func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.results))
	for id := range m.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
