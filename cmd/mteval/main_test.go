//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-mteval/log"
)

const input = "id,source,context,reference,gemini,yandex\n" +
	"1,s,c,the cat sat on the mat,the cat sat on the mat,a cat\n"

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// TestRunUsage verifies a missing or extra argument prints usage and fails.
func TestRunUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: mteval [flags] <input-file>")
	assert.Contains(t, stderr, "-mode")

	code, _, _ = runCLI(t, "a.csv", "b.csv")
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, "-unknown", "a.csv")
	assert.Equal(t, 1, code)
}

// TestRunReportMode verifies the report goes to stdout.
func TestRunReportMode(t *testing.T) {
	code, stdout, _ := runCLI(t, "-preset", "gemini-yandex", "-mode", "report", "-metrics", "bleu, rougeL", writeInput(t))
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "BLEU Scores:\nRow 1 - Gemini: 100.00\n")
	assert.Contains(t, stdout, "ROUGE-L Scores:")
	assert.NotContains(t, stdout, "chrF")
}

// TestRunAugmentedMode verifies the output file and result store.
func TestRunAugmentedMode(t *testing.T) {
	path := writeInput(t)
	results := filepath.Join(t.TempDir(), "results")
	code, stdout, _ := runCLI(t, "-preset", "gemini-yandex", "-result-dir", results, "-parallelism", "2", path)
	require.Equal(t, 0, code)
	out := filepath.Join(filepath.Dir(path), "in_with_scores.csv")
	assert.Contains(t, stdout, "Scores written to "+out)
	assert.FileExists(t, out)
	entries, err := os.ReadDir(results)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestRunSchemaAndDelimiter verifies a JSON schema combined with a delimiter override.
func TestRunSchemaAndDelimiter(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(
		`{"delimiter": ";", "columnCount": 2, "reference": 0, "hypotheses": [{"index": 1, "label": "MT"}]}`), 0o644))
	in := filepath.Join(dir, "in.tsv")
	require.NoError(t, os.WriteFile(in, []byte("ref\thyp\nhello world\thello world\n"), 0o644))

	code, stdout, _ := runCLI(t, "-schema", schemaPath, "-delimiter", "tab", "-mode", "report", "-metrics", "chrf", in)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Row 1 - MT: 100.00")
}

// TestRunFailures verifies fatal configuration and resource errors exit with 1.
func TestRunFailures(t *testing.T) {
	path := writeInput(t)
	cases := [][]string{
		{"-preset", "nope", path},
		{"-mode", "html", path},
		{"-log-level", "loud", path},
		{"-metrics", "ter", path},
		{"-synonyms", filepath.Join(t.TempDir(), "missing.json"), path},
		{"-preset", "gemini-yandex", filepath.Join(t.TempDir(), "missing.csv")},
	}
	for _, args := range cases {
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, 1, code, args)
		assert.Contains(t, stderr, "mteval:", args)
	}
}

// TestSplitList verifies metric list parsing.
func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"bleu", "chrf"}, splitList(" bleu, ,chrf "))
	assert.Nil(t, splitList(""))
	assert.Equal(t, "\t", delimiter("TAB"))
	assert.Equal(t, ";", delimiter(";"))
}
