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
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SynonymSource decides whether two lowercased words are synonyms.
type SynonymSource interface {
	Synonymous(a, b string) bool
}

// SynonymTable is a SynonymSource built from groups of interchangeable words.
// A word may belong to several groups.
type SynonymTable struct {
	groups map[string][]int
}

// NewSynonymTable builds a table from synonym groups. Words are lowercased.
func NewSynonymTable(groups [][]string) *SynonymTable {
	t := &SynonymTable{groups: make(map[string][]int)}
	for id, g := range groups {
		for _, w := range g {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			t.groups[w] = append(t.groups[w], id)
		}
	}
	return t
}

// LoadSynonyms reads a JSON array of synonym groups, e.g. [["big","large"]].
func LoadSynonyms(path string) (*SynonymTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read synonyms %s: %w", path, err)
	}
	var groups [][]string
	if err := json.Unmarshal(b, &groups); err != nil {
		return nil, fmt.Errorf("parse synonyms %s: %w", path, err)
	}
	return NewSynonymTable(groups), nil
}

// Len returns the number of distinct words in the table.
func (t *SynonymTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.groups)
}

// Synonymous implements SynonymSource. Identical words are not reported.
// A nil table has no synonyms.
func (t *SynonymTable) Synonymous(a, b string) bool {
	if t == nil || a == b {
		return false
	}
	ga, gb := t.groups[a], t.groups[b]
	for _, x := range ga {
		for _, y := range gb {
			if x == y {
				return true
			}
		}
	}
	return false
}
