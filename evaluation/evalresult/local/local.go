//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package local stores run results as JSON files in a directory.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
)

const resultSuffix = ".mteval_result.json"

// manager implements evalresult.Manager using local files.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a local file result manager.
func New(opt ...evalresult.Option) evalresult.Manager {
	opts := evalresult.NewOptions(opt...)
	return &manager{baseDir: opts.BaseDir}
}

// Save writes result to <id>.mteval_result.json through a temporary file.
func (m *manager) Save(ctx context.Context, result *evalresult.Result) (string, error) {
	if result == nil {
		return "", errors.New("result is nil")
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if err := checkID(result.ID); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create result dir: %w", err)
	}
	path := m.resultPath(result.ID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", tmp, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("encode result %s: %w", result.ID, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return result.ID, nil
}

// Get loads a result by ID.
func (m *manager) Get(ctx context.Context, id string) (*evalresult.Result, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := os.Open(m.resultPath(id))
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id, err)
	}
	defer f.Close()
	var res evalresult.Result
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", id, err)
	}
	return &res, nil
}

// List returns stored IDs in lexical order. A missing directory holds no results.
func (m *manager) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, resultSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, resultSuffix))
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *manager) resultPath(id string) string {
	return filepath.Join(m.baseDir, id+resultSuffix)
}

func checkID(id string) error {
	if id == "" {
		return errors.New("result id is empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("invalid result id %q", id)
	}
	return nil
}
