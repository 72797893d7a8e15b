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

package quiver

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -linecomment

// Op identifies a binary operator by canonical name. The set is closed:
// array capability lookups switch over it rather than synthesizing method
// names at runtime.
type Op int8

const (
	OpInvalid Op = iota // invalid

	OpAdd      // add
	OpSub      // sub
	OpMul      // mul
	OpDiv      // div
	OpTrueDiv  // truediv
	OpFloorDiv // floordiv
	OpMod      // mod
	OpPow      // pow
	OpDivmod   // divmod
	OpMatmul   // matmul

	OpEq // eq
	OpNe // ne
	OpLt // lt
	OpLe // le
	OpGt // gt
	OpGe // ge
)

// IsComparison reports whether op is one of the six ordering/equality
// operators.
func (op Op) IsComparison() bool { return op >= OpEq && op <= OpGe }

// Flip returns the comparison obtained by swapping the operand order:
// lt and gt swap, le and ge swap, eq and ne map to themselves. Flip is an
// involution on the comparison set and the identity everywhere else; the
// reflected form of a non-comparison operator is expressed through
// Operator.Reflected instead.
func (op Op) Flip() Op {
	switch op {
	case OpLt:
		return OpGt
	case OpGt:
		return OpLt
	case OpLe:
		return OpGe
	case OpGe:
		return OpLe
	}
	return op
}

// Operator is an Op together with its orientation. A reflected operator has
// its operands swapped relative to the receiver that implements it, following
// the "r"-prefixed naming convention.
type Operator struct {
	Op        Op
	Reflected bool
}

// Name returns the conventional name of the operator: "add"/"radd" for
// arithmetic, and the flipped comparison name for reflected comparisons,
// which have no "r" form.
func (o Operator) Name() string {
	if !o.Reflected {
		return o.Op.String()
	}
	if o.Op.IsComparison() {
		return o.Op.Flip().String()
	}
	return "r" + o.Op.String()
}
