//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-mteval/metric"
)

// ReportSeparator separates metric blocks in a report.
var ReportSeparator = strings.Repeat("-", 50)

// SkippedRow records a row left out of the table.
type SkippedRow struct {
	Position int      `json:"position"`
	Line     int      `json:"line"`
	Fields   []string `json:"fields"`
	Reason   string   `json:"reason"`
}

// Table is the ordered result of a run.
type Table struct {
	// Header is the input header.
	Header []string
	// Labels are the hypothesis labels in schema order.
	Labels []string
	// Metrics are the metric names in reporting order.
	Metrics []string
	// Rows are the scored rows in input order.
	Rows []*Row
	// Skipped lists rows that did not match the schema.
	Skipped []SkippedRow
}

// FormatScore renders a score with two decimals.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ColumnName names the output column of one metric for one hypothesis.
func ColumnName(metricName, label string) string {
	return fmt.Sprintf("%s score %s", metric.Title(metricName), label)
}

// AugmentedHeader returns the input header followed by one column per
// hypothesis and metric, hypothesis-major.
func (t *Table) AugmentedHeader() []string {
	header := append([]string(nil), t.Header...)
	for _, label := range t.Labels {
		for _, m := range t.Metrics {
			header = append(header, ColumnName(m, label))
		}
	}
	return header
}

// AugmentedRecords returns each row's original fields followed by its scores
// in AugmentedHeader order.
func (t *Table) AugmentedRecords() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := append([]string(nil), r.Fields...)
		for _, res := range r.Results {
			for _, m := range t.Metrics {
				v, _ := res.Scores.Get(m)
				rec = append(rec, FormatScore(v))
			}
		}
		records = append(records, rec)
	}
	return records
}

// WriteReport writes one block per metric, each listing every row and label:
//
//	BLEU Scores:
//	Row 1 - GPT: 42.00
//
// Blocks are separated by a blank line, ReportSeparator and a blank line.
func (t *Table) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, m := range t.Metrics {
		if i > 0 {
			fmt.Fprintf(bw, "\n%s\n\n", ReportSeparator)
		}
		fmt.Fprintf(bw, "%s Scores:\n", metric.Title(m))
		for _, r := range t.Rows {
			for _, res := range r.Results {
				v, _ := res.Scores.Get(m)
				fmt.Fprintf(bw, "Row %d - %s: %s\n", r.Position, res.Label, FormatScore(v))
			}
		}
	}
	return bw.Flush()
}

// Mean returns the average score of metricName for label over all rows.
// It returns false when the table has no rows.
func (t *Table) Mean(metricName, label string) (float64, bool) {
	var sum float64
	var n int
	for _, r := range t.Rows {
		for _, res := range r.Results {
			if res.Label != label {
				continue
			}
			if v, ok := res.Scores.Get(metricName); ok {
				sum += v
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
