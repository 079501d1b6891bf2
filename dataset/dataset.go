//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package dataset reads and writes delimited text tables with a header row.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrResourceUnavailable marks an input or output file that cannot be accessed.
var ErrResourceUnavailable = errors.New("resource unavailable")

// OutputSuffix is inserted before the extension of augmented output files.
const OutputSuffix = "_with_scores"

// Record is one data row.
type Record struct {
	// Position is the 1-based index among data rows, header excluded.
	Position int
	// Line is the 1-based line in the file where the record starts.
	Line int
	// Fields holds the raw field values.
	Fields []string
}

// Table is a parsed delimited file.
type Table struct {
	Header  []string
	Records []Record
}

// Read parses the file at path. A missing or unreadable file, or a file
// without a header row, yields ErrResourceUnavailable.
func Read(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrResourceUnavailable, path, err)
	}
	defer f.Close()
	t, err := Parse(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrResourceUnavailable, path, err)
	}
	return t, nil
}

// Parse reads a header and all records from r. Records keep whatever field
// count they have; checking it is left to the caller. A blank line between
// data rows becomes a record without fields, so positions follow the file.
// Blank lines after the last row are ignored.
func Parse(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("header: %w", err)
	}
	lastLine := endLine(cr, header)
	for i := range header {
		header[i] = cleanCell(header[i])
	}

	t := &Table{Header: header}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		for blank := lastLine + 1; blank < line; blank++ {
			t.Records = append(t.Records, Record{
				Position: len(t.Records) + 1,
				Line:     blank,
			})
		}
		lastLine = endLine(cr, fields)
		t.Records = append(t.Records, Record{
			Position: len(t.Records) + 1,
			Line:     line,
			Fields:   fields,
		})
	}
	return t, nil
}

// endLine returns the line the record just read ends on.
func endLine(cr *csv.Reader, fields []string) int {
	last := len(fields) - 1
	line, _ := cr.FieldPos(last)
	return line + strings.Count(fields[last], "\n")
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
}

// OutputPath derives the augmented output path from the input path.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + OutputSuffix + ext
}

// Write writes header and rows to path through a temporary file that is
// renamed into place, so a failed write leaves no partial file behind.
func Write(path string, comma rune, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrResourceUnavailable, path, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrResourceUnavailable, path, err)
	}

	w := csv.NewWriter(tmp)
	w.Comma = comma
	if err := w.Write(header); err != nil {
		return fail(err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrResourceUnavailable, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrResourceUnavailable, path, err)
	}
	return nil
}
