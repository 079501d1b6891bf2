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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-mteval/dataset"
)

type rowParam struct {
	idx       int
	ctx       context.Context
	record    dataset.Record
	evaluator *Evaluator
	rows      []*Row
	errs      []error
	wg        *sync.WaitGroup
}

func (p *rowParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.record = dataset.Record{}
	p.evaluator = nil
	p.rows = nil
	p.errs = nil
	p.wg = nil
}

var rowParamPool = &sync.Pool{
	New: func() any { return new(rowParam) },
}

func createRowPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*rowParam)
		if !ok {
			panic("row pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			rowParamPool.Put(param)
		}()
		if err := param.ctx.Err(); err != nil {
			param.errs[param.idx] = err
			return
		}
		param.rows[param.idx], param.errs[param.idx] = param.evaluator.EvaluateRow(param.ctx, param.record)
	})
	if err != nil {
		return nil, fmt.Errorf("create row pool: %w", err)
	}
	return pool, nil
}
