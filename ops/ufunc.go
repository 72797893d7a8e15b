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
	"reflect"

	"github.com/quiverdata/quiver"
)

// ApplyMode is how a vectorized engine invoked an elementwise operation.
// Only the plain call is eligible for operator dispatch; the aggregate
// modes have no operator-method equivalent.
type ApplyMode int8

const (
	ApplyCall ApplyMode = iota
	ApplyReduce
	ApplyAccumulate
	ApplyReduceAt
	ApplyOuter
	ApplyAt
)

// UfuncOptions carries the keyword modifiers of an elementwise invocation.
// A non-nil Out forces the generic path: dispatching to a method that
// allocates its own result cannot honor a caller-supplied destination
// buffer.
type UfuncOptions struct {
	Out any
}

// DispatchResult is the outcome of a ufunc dispatch attempt. Handled false
// is the expected fallback signal telling the engine to run its own
// elementwise implementation; it is never a failure.
type DispatchResult struct {
	Value   any
	Err     error
	Handled bool
}

var notHandled = DispatchResult{}

// ufuncAliases maps engine-reported ufunc names to canonical operators.
// Note that "divide" maps to div, which is absent from the dispatchable
// set below: that ufunc always falls through to the generic path.
var ufuncAliases = map[string]quiver.Op{
	"subtract":      quiver.OpSub,
	"multiply":      quiver.OpMul,
	"floor_divide":  quiver.OpFloorDiv,
	"true_divide":   quiver.OpTrueDiv,
	"power":         quiver.OpPow,
	"remainder":     quiver.OpMod,
	"divide":        quiver.OpDiv,
	"equal":         quiver.OpEq,
	"not_equal":     quiver.OpNe,
	"less":          quiver.OpLt,
	"less_equal":    quiver.OpLe,
	"greater":       quiver.OpGt,
	"greater_equal": quiver.OpGe,
}

// ufuncNames resolves ufuncs already reported under their canonical name.
var ufuncNames = map[string]quiver.Op{
	"add":      quiver.OpAdd,
	"sub":      quiver.OpSub,
	"mul":      quiver.OpMul,
	"div":      quiver.OpDiv,
	"truediv":  quiver.OpTrueDiv,
	"floordiv": quiver.OpFloorDiv,
	"mod":      quiver.OpMod,
	"pow":      quiver.OpPow,
	"divmod":   quiver.OpDivmod,
	"matmul":   quiver.OpMatmul,
	"eq":       quiver.OpEq,
	"ne":       quiver.OpNe,
	"lt":       quiver.OpLt,
	"le":       quiver.OpLe,
	"gt":       quiver.OpGt,
	"ge":       quiver.OpGe,
}

// dispatchable is the closed set of operators eligible for ufunc dispatch.
var dispatchable = map[quiver.Op]struct{}{
	quiver.OpAdd:      {},
	quiver.OpSub:      {},
	quiver.OpMul:      {},
	quiver.OpPow:      {},
	quiver.OpMod:      {},
	quiver.OpFloorDiv: {},
	quiver.OpTrueDiv:  {},
	quiver.OpDivmod:   {},
	quiver.OpMatmul:   {},
	quiver.OpEq:       {},
	quiver.OpNe:       {},
	quiver.OpLt:       {},
	quiver.OpLe:       {},
	quiver.OpGt:       {},
	quiver.OpGe:       {},
}

func resolveUfunc(name string) quiver.Op {
	if op, ok := ufuncAliases[name]; ok {
		return op
	}
	if op, ok := ufuncNames[name]; ok {
		return op
	}
	return quiver.OpInvalid
}

// MaybeDispatchUfunc redirects a generic elementwise invocation, identified
// by ufunc name and positional inputs, to the operator implementation self
// owns, when doing so is safe and semantically equivalent.
//
// Operand order decides the orientation: when inputs[0] is the same concrete
// type as self, self's forward operator runs with inputs[1]; otherwise the
// operation was issued as other OP self, so comparisons flip and everything
// else runs reflected with inputs[0].
func MaybeDispatchUfunc(self quiver.Operable, ufunc string, mode ApplyMode, inputs []any, opts UfuncOptions) DispatchResult {
	op := resolveUfunc(ufunc)

	if mode != ApplyCall || opts.Out != nil || len(inputs) != 2 {
		return notHandled
	}
	if _, ok := dispatchable[op]; !ok {
		return notHandled
	}

	if reflect.TypeOf(inputs[0]) == reflect.TypeOf(self) {
		if !self.HasOp(op) {
			return notHandled
		}
		v, err := self.ApplyOp(op, inputs[1])
		return DispatchResult{Value: v, Err: err, Handled: true}
	}

	if op.IsComparison() {
		flipped := op.Flip()
		if !self.HasOp(flipped) {
			return notHandled
		}
		v, err := self.ApplyOp(flipped, inputs[0])
		return DispatchResult{Value: v, Err: err, Handled: true}
	}

	if !self.HasOp(op) {
		return notHandled
	}
	v, err := self.ApplyReflected(op, inputs[0])
	return DispatchResult{Value: v, Err: err, Handled: true}
}
