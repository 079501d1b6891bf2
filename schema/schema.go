//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package schema maps the semantic roles of an input table (one reference
// column, N labelled hypothesis columns) to column positions.
//
// A Schema is validated once, before any row is read, and is read-only after.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// ErrConfiguration marks a schema that cannot be used.
var ErrConfiguration = errors.New("configuration error")

// supportedDelimiters lists the accepted field separators.
var supportedDelimiters = map[rune]bool{',': true, ';': true, '\t': true, '|': true}

// Column is a hypothesis column.
type Column struct {
	// Index is the 0-based column position.
	Index int `json:"index"`
	// Label names the candidate source, e.g. a translation engine.
	Label string `json:"label"`
}

// Schema describes where texts live in each row.
type Schema struct {
	// Delimiter separates fields in input and output files.
	Delimiter string `json:"delimiter"`
	// ColumnCount is the exact number of fields a row must have.
	ColumnCount int `json:"columnCount"`
	// Reference is the 0-based position of the reference text.
	Reference int `json:"reference"`
	// Hypotheses lists hypothesis columns in output order.
	Hypotheses []Column `json:"hypotheses"`
}

// Load reads a JSON schema from path and validates it.
func Load(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read schema %s: %v", ErrConfiguration, path, err)
	}
	var s Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: parse schema %s: %v", ErrConfiguration, path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Comma returns the delimiter as a rune. Validate guarantees it is a single rune.
func (s *Schema) Comma() rune {
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}

// Labels returns the hypothesis labels in order.
func (s *Schema) Labels() []string {
	labels := make([]string, len(s.Hypotheses))
	for i, h := range s.Hypotheses {
		labels[i] = h.Label
	}
	return labels
}

// WithDelimiter returns a copy of s using delimiter d.
func (s *Schema) WithDelimiter(d string) *Schema {
	c := s.clone()
	c.Delimiter = d
	return c
}

func (s *Schema) clone() *Schema {
	c := *s
	c.Hypotheses = append([]Column(nil), s.Hypotheses...)
	return &c
}

// Validate reports every problem at once, wrapped in ErrConfiguration.
func (s *Schema) Validate() error {
	var result error
	if utf8.RuneCountInString(s.Delimiter) != 1 || !supportedDelimiters[s.Comma()] {
		result = multierror.Append(result, fmt.Errorf("unsupported delimiter %q", s.Delimiter))
	}
	if s.ColumnCount <= 0 {
		result = multierror.Append(result, fmt.Errorf("column count %d must be positive", s.ColumnCount))
	}
	if len(s.Hypotheses) == 0 {
		result = multierror.Append(result, errors.New("no hypothesis columns"))
	}
	used := map[int]string{}
	checkIndex := func(role string, idx int) {
		if idx < 0 || (s.ColumnCount > 0 && idx >= s.ColumnCount) {
			result = multierror.Append(result,
				fmt.Errorf("%s index %d outside %d columns", role, idx, s.ColumnCount))
		}
		if prev, ok := used[idx]; ok {
			result = multierror.Append(result,
				fmt.Errorf("%s index %d already used by %s", role, idx, prev))
			return
		}
		used[idx] = role
	}
	checkIndex("reference", s.Reference)
	labels := map[string]bool{}
	for _, h := range s.Hypotheses {
		role := fmt.Sprintf("hypothesis %q", h.Label)
		if h.Label == "" {
			result = multierror.Append(result, fmt.Errorf("hypothesis at index %d has no label", h.Index))
		} else if labels[h.Label] {
			result = multierror.Append(result, fmt.Errorf("duplicate hypothesis label %q", h.Label))
		}
		labels[h.Label] = true
		checkIndex(role, h.Index)
	}
	if result != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, result)
	}
	return nil
}

// ValidateHeader rejects a header too short for the declared columns.
func (s *Schema) ValidateHeader(header []string) error {
	highest := s.Reference
	for _, h := range s.Hypotheses {
		highest = max(highest, h.Index)
	}
	if highest >= len(header) {
		return fmt.Errorf("%w: column index %d exceeds header length %d",
			ErrConfiguration, highest, len(header))
	}
	return nil
}
