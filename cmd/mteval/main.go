//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command mteval scores translation hypotheses in a delimited file.
//
//	mteval -preset all-engines -mode report translations.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	mteval "trpc.group/trpc-go/trpc-mteval"
	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult"
	"trpc.group/trpc-go/trpc-mteval/evaluation/evalresult/local"
	itelemetry "trpc.group/trpc-go/trpc-mteval/internal/telemetry"
	"trpc.group/trpc-go/trpc-mteval/log"
	"trpc.group/trpc-go/trpc-mteval/metric/meteor"
	"trpc.group/trpc-go/trpc-mteval/schema"
	"trpc.group/trpc-go/trpc-mteval/telemetry/metric"
	"trpc.group/trpc-go/trpc-mteval/telemetry/trace"
)

const usage = "Usage: mteval [flags] <input-file>"

type config struct {
	mode         string
	preset       string
	schemaPath   string
	delimiter    string
	metrics      string
	parallelism  int
	synonyms     string
	resultDir    string
	logLevel     string
	otlpEndpoint string
	otlpProtocol string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mteval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	var c config
	fs.StringVar(&c.mode, "mode", string(mteval.ModeAugmented), "output mode: augmented or report")
	fs.StringVar(&c.preset, "preset", schema.PresetGPTGoogle,
		"column layout preset: "+strings.Join(schema.PresetNames(), ", "))
	fs.StringVar(&c.schemaPath, "schema", "", "JSON schema file, overrides -preset")
	fs.StringVar(&c.delimiter, "delimiter", "", `field delimiter overriding the schema: , ; | or "tab"`)
	fs.StringVar(&c.metrics, "metrics", "", "comma separated metrics (default bleu,rougeL,chrf,meteor)")
	fs.IntVar(&c.parallelism, "parallelism", 1, "rows scored concurrently")
	fs.StringVar(&c.synonyms, "synonyms", "", "JSON synonym groups enabling the METEOR synonym stage")
	fs.StringVar(&c.resultDir, "result-dir", "", "directory to store run results in")
	fs.StringVar(&c.logLevel, "log-level", log.LevelInfo, "debug, info, warn, error or fatal")
	fs.StringVar(&c.otlpEndpoint, "otlp-endpoint", "", "OTLP collector host:port; enables telemetry export")
	fs.StringVar(&c.otlpProtocol, "otlp-protocol", itelemetry.ProtocolGRPC, "OTLP protocol: grpc or http")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	log.SetOutput(stderr)
	if _, err := log.ParseLevel(c.logLevel); err != nil {
		log.Errorf("mteval: %v", err)
		return 1
	}
	log.SetLevel(c.logLevel)

	if c.otlpEndpoint != "" {
		shutdown, err := startTelemetry(ctx, c.otlpEndpoint, c.otlpProtocol)
		if err != nil {
			log.Errorf("mteval: %v", err)
			return 1
		}
		defer shutdown()
	}

	mode, opts, err := c.options(stdout)
	if err != nil {
		log.Errorf("mteval: %v", err)
		return 1
	}
	outcome, err := mteval.Run(ctx, fs.Arg(0), mode, opts...)
	if err != nil {
		log.Errorf("mteval: %v", err)
		return 1
	}
	if outcome.OutputPath != "" {
		fmt.Fprintf(stdout, "Scores written to %s\n", outcome.OutputPath)
	}
	return 0
}

// options turns flags into Run options.
func (c *config) options(stdout io.Writer) (mteval.Mode, []mteval.Option, error) {
	mode, err := mteval.ParseMode(c.mode)
	if err != nil {
		return "", nil, err
	}
	var s *schema.Schema
	if c.schemaPath != "" {
		s, err = schema.Load(c.schemaPath)
	} else {
		s, err = schema.Preset(c.preset)
	}
	if err != nil {
		return "", nil, err
	}
	if c.delimiter != "" {
		s = s.WithDelimiter(delimiter(c.delimiter))
	}

	opts := []mteval.Option{
		mteval.WithSchema(s),
		mteval.WithReportWriter(stdout),
		mteval.WithParallelism(c.parallelism),
	}
	if names := splitList(c.metrics); len(names) > 0 {
		opts = append(opts, mteval.WithMetrics(names...))
	}
	if c.synonyms != "" {
		table, err := meteor.LoadSynonyms(c.synonyms)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", mteval.ErrConfiguration, err)
		}
		log.Infof("loaded %d synonym entries from %s", table.Len(), c.synonyms)
		opts = append(opts, mteval.WithSynonyms(table))
	}
	if c.resultDir != "" {
		opts = append(opts, mteval.WithResultManager(local.New(evalresult.WithBaseDir(c.resultDir))))
	}
	return mode, opts, nil
}

func startTelemetry(ctx context.Context, endpoint, protocol string) (func(), error) {
	cleanTrace, err := trace.Start(ctx, trace.WithEndpoint(endpoint), trace.WithProtocol(protocol))
	if err != nil {
		return nil, fmt.Errorf("start tracing: %w", err)
	}
	mp, err := metric.NewMeterProvider(ctx, metric.WithEndpoint(endpoint), metric.WithProtocol(protocol))
	if err != nil {
		_ = cleanTrace()
		return nil, fmt.Errorf("create meter provider: %w", err)
	}
	if err := metric.InitMeterProvider(mp); err != nil {
		_ = cleanTrace()
		return nil, err
	}
	return func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Warnf("shutdown meter provider: %v", err)
		}
		if err := cleanTrace(); err != nil {
			log.Warnf("shutdown tracer provider: %v", err)
		}
	}, nil
}

func delimiter(s string) string {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return "\t"
	}
	return s
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
