// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ops

import (
	"context"
	"fmt"
	"runtime"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/compute"
	"golang.org/x/sync/errgroup"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/frame"
	"github.com/quiverdata/quiver/series"
)

// FrameOp applies op between two frames, decomposing into column-wise
// series operations when the pair cannot run as one bulk operation.
// Columns pair by position.
func FrameOp(ctx context.Context, left, right *frame.Frame, op quiver.Operator) (*frame.Frame, error) {
	if left.NumCols() != right.NumCols() {
		return nil, fmt.Errorf("%w: frame column counts differ: %d vs %d",
			arrow.ErrInvalid, left.NumCols(), right.NumCols())
	}
	if ShouldSeriesDispatch(left, right, op) {
		return DispatchToSeries(ctx, left, right, op)
	}
	return bulkFrameOp(ctx, left, right, op)
}

// DispatchToSeries runs op column by column. Each column pair independently
// routes through the extension bridge or the native compute path, so a
// heterogeneous frame can mix arithmetic paths per column. Columns execute
// concurrently; the first error wins and the rest are discarded.
func DispatchToSeries(ctx context.Context, left, right *frame.Frame, op quiver.Operator) (*frame.Frame, error) {
	out := make([]*series.Series, left.NumCols())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < left.NumCols(); i++ {
		i := i
		g.Go(func() error {
			lcol, rcol := left.Column(i), right.Column(i)
			res, err := seriesOp(gctx, lcol, rcol, op)
			if err != nil {
				return fmt.Errorf("column %q: %w", lcol.Name(), err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		releaseAll(out)
		return nil, err
	}

	res, err := frame.New(out...)
	releaseAll(out)
	return res, err
}

// seriesOp applies op to one column pair, consulting the extension-dispatch
// predicate to pick the path.
func seriesOp(ctx context.Context, left, right *series.Series, op quiver.Operator) (*series.Series, error) {
	if ShouldExtensionDispatch(left, right) {
		res, err := DispatchToExtensionOp(op, left.Array(), right.Array(), false)
		if err != nil {
			return nil, err
		}
		arr, ok := res.(arrow.Array)
		if !ok {
			return nil, fmt.Errorf("%w: operator %s returned %T, want an array",
				arrow.ErrType, op.Name(), res)
		}
		defer arr.Release()
		return series.New(left.Name(), arr), nil
	}
	return nativeOp(ctx, left, right, op)
}

// nativeOp is the generic bulk path: arrow compute kernels over the raw
// column storage.
func nativeOp(ctx context.Context, left, right *series.Series, op quiver.Operator) (*series.Series, error) {
	fname, ok := computeFuncName(op.Op)
	if !ok {
		return nil, fmt.Errorf("%w: no native kernel for %s", arrow.ErrNotImplemented, op.Op)
	}

	l, r := left.Array(), right.Array()
	if op.Reflected {
		l, r = r, l
	}

	out, err := compute.CallFunction(ctx, fname, nil,
		&compute.ArrayDatum{Value: l.Data()},
		&compute.ArrayDatum{Value: r.Data()})
	if err != nil {
		return nil, err
	}
	defer out.Release()

	ad, ok := out.(*compute.ArrayDatum)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected %s result from %s", arrow.ErrType, out.Kind(), fname)
	}
	arr := ad.MakeArray()
	defer arr.Release()
	return series.New(left.Name(), arr), nil
}

// bulkFrameOp runs the native path over every column without per-column
// dispatch checks; the caller has already established the frame pair is
// homogeneous enough for it.
func bulkFrameOp(ctx context.Context, left, right *frame.Frame, op quiver.Operator) (*frame.Frame, error) {
	out := make([]*series.Series, left.NumCols())
	for i := 0; i < left.NumCols(); i++ {
		res, err := nativeOp(ctx, left.Column(i), right.Column(i), op)
		if err != nil {
			releaseAll(out)
			return nil, fmt.Errorf("column %q: %w", left.Column(i).Name(), err)
		}
		out[i] = res
	}

	res, err := frame.New(out...)
	releaseAll(out)
	return res, err
}

// computeFuncName maps an operator to the arrow compute function that
// implements it natively. Operators with no registered kernel report false.
func computeFuncName(op quiver.Op) (string, bool) {
	switch op {
	case quiver.OpAdd:
		return "add", true
	case quiver.OpSub:
		return "sub", true
	case quiver.OpMul:
		return "multiply", true
	case quiver.OpTrueDiv:
		return "divide", true
	case quiver.OpPow:
		return "power", true
	case quiver.OpEq:
		return "equal", true
	case quiver.OpNe:
		return "not_equal", true
	case quiver.OpLt:
		return "less", true
	case quiver.OpLe:
		return "less_equal", true
	case quiver.OpGt:
		return "greater", true
	case quiver.OpGe:
		return "greater_equal", true
	}
	return "", false
}

func releaseAll(cols []*series.Series) {
	for _, c := range cols {
		if c != nil {
			c.Release()
		}
	}
}
