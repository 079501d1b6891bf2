//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package mteval

import (
	"trpc.group/trpc-go/trpc-mteval/dataset"
	"trpc.group/trpc-go/trpc-mteval/evaluation"
	"trpc.group/trpc-go/trpc-mteval/schema"
)

// Error classes. Test with errors.Is.
var (
	// ErrConfiguration is fatal: the schema, options or header cannot be used.
	ErrConfiguration = schema.ErrConfiguration
	// ErrResourceUnavailable is fatal: the input or output file cannot be accessed.
	ErrResourceUnavailable = dataset.ErrResourceUnavailable
	// ErrSchemaMismatch is recoverable: a row was skipped.
	ErrSchemaMismatch = evaluation.ErrSchemaMismatch
)
