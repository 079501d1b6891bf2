//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseKeepsPositionsAndLines verifies records carry data position and physical line.
func TestParseKeepsPositionsAndLines(t *testing.T) {
	in := "\ufeff id ;text \n1;\"multi\nline\"\n2;plain\n3\n"
	tbl, err := Parse(strings.NewReader(in), ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "text"}, tbl.Header)
	require.Len(t, tbl.Records, 3)

	assert.Equal(t, 1, tbl.Records[0].Position)
	assert.Equal(t, 2, tbl.Records[0].Line)
	assert.Equal(t, []string{"1", "multi\nline"}, tbl.Records[0].Fields)

	assert.Equal(t, 2, tbl.Records[1].Position)
	assert.Equal(t, 4, tbl.Records[1].Line)

	assert.Equal(t, 3, tbl.Records[2].Position)
	assert.Equal(t, []string{"3"}, tbl.Records[2].Fields)
}

// TestParseBlankLinesKeepPositions verifies a blank line between rows is a
// fieldless record and later rows keep their file position.
func TestParseBlankLinesKeepPositions(t *testing.T) {
	in := "\nid,text\n1,a\n\n3,\"two\nlines\"\n\n\n6,c\n\n\n"
	tbl, err := Parse(strings.NewReader(in), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "text"}, tbl.Header)
	require.Len(t, tbl.Records, 6)

	var positions, lines []int
	for _, rec := range tbl.Records {
		positions = append(positions, rec.Position)
		lines = append(lines, rec.Line)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, positions)
	assert.Equal(t, []int{3, 4, 5, 7, 8, 9}, lines)
	assert.Empty(t, tbl.Records[1].Fields)
	assert.Equal(t, []string{"3", "two\nlines"}, tbl.Records[2].Fields)
	assert.Empty(t, tbl.Records[3].Fields)
	assert.Equal(t, []string{"6", "c"}, tbl.Records[5].Fields)
}

// TestParseLazyQuotes verifies stray quotes inside fields are tolerated.
func TestParseLazyQuotes(t *testing.T) {
	tbl, err := Parse(strings.NewReader("a,b\nsay \"hi\",x\n"), ',')
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.Equal(t, `say "hi"`, tbl.Records[0].Fields[0])
}

// TestParseEmpty verifies an input without a header is rejected.
func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""), ',')
	assert.Error(t, err)
}

// TestReadMissingFile verifies a missing input is a resource error.
func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = Read(empty, ',')
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

// TestWriteThenRead verifies written tables read back unchanged.
func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	header := []string{"ref", "hyp"}
	rows := [][]string{{"a;b", "c"}, {"d", "e \"q\""}}
	require.NoError(t, Write(path, ';', header, rows))

	tbl, err := Read(path, ';')
	require.NoError(t, err)
	assert.Equal(t, header, tbl.Header)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, rows[0], tbl.Records[0].Fields)
	assert.Equal(t, rows[1], tbl.Records[1].Fields)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestWriteMissingDir verifies a failed write leaves no file and reports a resource error.
func TestWriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := Write(path, ',', []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.NoFileExists(t, path)
}

// TestOutputPath verifies the suffix is placed before the extension.
func TestOutputPath(t *testing.T) {
	assert.Equal(t, "data/in_with_scores.csv", OutputPath("data/in.csv"))
	assert.Equal(t, "in_with_scores", OutputPath("in"))
	assert.Equal(t, "a.b/in_with_scores.tsv", OutputPath("a.b/in.tsv"))
}
