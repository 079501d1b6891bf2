//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package mteval scores machine translation hypotheses against reference
// translations with BLEU, ROUGE-L, chrF and METEOR.
//
// Run reads a delimited table, scores every hypothesis column of every row
// against the row's reference column and either writes the table back with
// one score column per hypothesis and metric, or prints a report grouped by
// metric:
//
//	outcome, err := mteval.Run(ctx, "translations.csv", mteval.ModeReport,
//		mteval.WithSchema(s),
//	)
package mteval

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-mteval/dataset"
	"trpc.group/trpc-go/trpc-mteval/evaluation"
	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
	"trpc.group/trpc-go/trpc-mteval/log"
	"trpc.group/trpc-go/trpc-mteval/metric/meteor"
	"trpc.group/trpc-go/trpc-mteval/metric/registry"
)

// Mode selects the output of a run.
type Mode string

// Output modes.
const (
	// ModeAugmented writes the input table plus score columns to a new file.
	ModeAugmented Mode = "augmented"
	// ModeReport writes one block of scores per metric.
	ModeReport Mode = "report"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAugmented, ModeReport:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q (want %s or %s)", ErrConfiguration, s, ModeAugmented, ModeReport)
}

// Outcome describes a finished run.
type Outcome struct {
	// Table holds the scored rows and the skipped ones.
	Table *evaluation.Table
	// OutputPath is the augmented file written, empty in report mode.
	OutputPath string
	// ResultID is the stored result, empty without a result manager.
	ResultID string
}

// Run scores the table at path. Configuration problems and an unreadable
// input are fatal and leave no output behind; rows that do not fit the
// schema are skipped and listed in the outcome.
func Run(ctx context.Context, path string, mode Mode, opt ...Option) (*Outcome, error) {
	opts := newOptions(opt...)
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if opts.schema == nil {
		return nil, fmt.Errorf("%w: schema is nil", ErrConfiguration)
	}
	if err := opts.schema.Validate(); err != nil {
		return nil, err
	}
	if mode == ModeReport && opts.reportWriter == nil {
		return nil, fmt.Errorf("%w: report writer is nil", ErrConfiguration)
	}
	metrics, err := resolveMetrics(opts)
	if err != nil {
		return nil, err
	}
	evaluator, err := evaluation.New(opts.schema,
		evaluation.WithMetrics(metrics),
		evaluation.WithParallelism(opts.parallelism),
	)
	if err != nil {
		return nil, err
	}

	input, err := dataset.Read(path, opts.schema.Comma())
	if err != nil {
		return nil, err
	}
	log.InfofContext(ctx, "read %d rows from %s", len(input.Records), path)
	table, err := evaluator.Evaluate(ctx, input)
	if err != nil {
		return nil, err
	}

	logMeans(ctx, table)

	// A failed save must leave no output behind.
	outcome := &Outcome{Table: table}
	if opts.resultManager != nil {
		id, err := opts.resultManager.Save(ctx, evalresult.New(path, string(mode), table))
		if err != nil {
			return nil, fmt.Errorf("save result: %w", err)
		}
		outcome.ResultID = id
		log.InfofContext(ctx, "stored result %s", id)
	}
	switch mode {
	case ModeAugmented:
		out := opts.outputPath
		if out == "" {
			out = dataset.OutputPath(path)
		}
		if err := dataset.Write(out, opts.schema.Comma(), table.AugmentedHeader(), table.AugmentedRecords()); err != nil {
			return nil, err
		}
		outcome.OutputPath = out
		log.InfofContext(ctx, "wrote %d scored rows to %s", len(table.Rows), out)
	case ModeReport:
		if err := table.WriteReport(opts.reportWriter); err != nil {
			return nil, fmt.Errorf("%w: write report: %v", ErrResourceUnavailable, err)
		}
	}
	return outcome, nil
}

func resolveMetrics(opts *options) ([]registry.Metric, error) {
	var meteorOpts []meteor.Option
	if opts.synonyms != nil {
		meteorOpts = append(meteorOpts, meteor.WithSynonyms(opts.synonyms))
	}
	metrics, err := registry.New(meteorOpts...).Resolve(opts.metricNames...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return metrics, nil
}

func logMeans(ctx context.Context, table *evaluation.Table) {
	for _, label := range table.Labels {
		for _, m := range table.Metrics {
			if v, ok := table.Mean(m, label); ok {
				log.InfofContext(ctx, "mean %s over %d rows: %s",
					evaluation.ColumnName(m, label), len(table.Rows), evaluation.FormatScore(v))
			}
		}
	}
}
