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

package arrays

import (
	"fmt"
	"time"

	"github.com/JohnCGriffin/overflow"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/quiverdata/quiver"
)

// Timedelta wraps a native duration array with its operator implementations.
// Like Datetime, an optional frequency anchors the values; integer offsets
// shift by multiples of it.
type Timedelta struct {
	values *array.Duration
	freq   time.Duration // 0 means no regular interval
	mem    memory.Allocator
}

// NewTimedelta wraps values, retaining a reference. freq may be 0 for
// unanchored values. Operator results are allocated from mem; nil selects
// the default allocator.
func NewTimedelta(values *array.Duration, freq time.Duration, mem memory.Allocator) *Timedelta {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	values.Retain()
	return &Timedelta{values: values, freq: freq, mem: mem}
}

func (a *Timedelta) Len() int                 { return a.values.Len() }
func (a *Timedelta) DataType() arrow.DataType { return a.values.DataType() }
func (a *Timedelta) IsNull(i int) bool        { return a.values.IsNull(i) }
func (a *Timedelta) Value(i int) arrow.Duration {
	return a.values.Value(i)
}

// Freq returns the regular interval between values, or 0 when unanchored.
func (a *Timedelta) Freq() time.Duration { return a.freq }

// Storage returns the wrapped native array without transferring ownership.
func (a *Timedelta) Storage() arrow.Array { return a.values }

func (a *Timedelta) Retain()  { a.values.Retain() }
func (a *Timedelta) Release() { a.values.Release() }

func (a *Timedelta) String() string { return a.values.String() }

func (a *Timedelta) unit() arrow.TimeUnit {
	return a.values.DataType().(*arrow.DurationType).Unit
}

// HasOp reports the operators Timedelta implements: addition, subtraction,
// integer multiplication, and the six comparisons.
func (a *Timedelta) HasOp(op quiver.Op) bool {
	switch op {
	case quiver.OpAdd, quiver.OpSub, quiver.OpMul:
		return true
	}
	return op.IsComparison()
}

func (a *Timedelta) ApplyOp(op quiver.Op, other any) (any, error) {
	switch {
	case op == quiver.OpAdd:
		return a.addSub(other, 1)
	case op == quiver.OpSub:
		return a.addSub(other, -1)
	case op == quiver.OpMul:
		return a.mul(other)
	case op.IsComparison():
		return a.compare(op, other)
	}
	return nil, fmt.Errorf("%w: %s on timedelta values", arrow.ErrNotImplemented, op)
}

func (a *Timedelta) ApplyReflected(op quiver.Op, other any) (any, error) {
	switch {
	case op.IsComparison():
		return a.compare(op.Flip(), other)
	case op == quiver.OpAdd:
		return a.addSub(other, 1)
	case op == quiver.OpMul:
		return a.mul(other)
	case op == quiver.OpSub:
		// other - a negates every element before adding; negation keeps
		// the anchoring frequency intact
		res, err := a.negate()
		if err != nil {
			return nil, err
		}
		defer res.Release()
		neg := NewTimedelta(res, a.freq, a.mem)
		defer neg.Release()
		return neg.addSub(other, 1)
	}
	return nil, fmt.Errorf("%w: reflected %s on timedelta values", arrow.ErrNotImplemented, op)
}

// addSub shifts every value by the offset described by other, negated when
// sign is -1.
func (a *Timedelta) addSub(other any, sign int64) (any, error) {
	mult := int64(a.unit().Multiplier())

	if n, ok := asInt64(other); ok {
		if a.freq == 0 {
			return nil, fmt.Errorf("%w: cannot shift timedelta values with no set frequency", quiver.ErrNullFrequency)
		}
		step, ok := overflow.Mul64(n, int64(a.freq)/mult)
		if !ok {
			return nil, fmt.Errorf("%w: timedelta shift overflows", arrow.ErrInvalid)
		}
		return a.shiftConst(sign * step)
	}

	switch d := other.(type) {
	case time.Duration:
		return a.shiftConst(sign * int64(d) / mult)
	case *Timedelta:
		return a.shiftBy(d.values, sign)
	case *array.Duration:
		return a.shiftBy(d, sign)
	case *array.Int64:
		return a.shiftCounts(d, sign)
	}
	return nil, fmt.Errorf("%w: cannot add %T to timedelta values", arrow.ErrNotImplemented, other)
}

// shiftCounts shifts every value by a per-element multiple of the
// frequency.
func (a *Timedelta) shiftCounts(counts *array.Int64, sign int64) (*array.Duration, error) {
	if a.freq == 0 {
		return nil, fmt.Errorf("%w: cannot shift timedelta values with no set frequency", quiver.ErrNullFrequency)
	}
	if counts.Len() != a.Len() {
		return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), counts.Len())
	}
	freqUnits := int64(a.freq) / int64(a.unit().Multiplier())

	bldr := array.NewDurationBuilder(a.mem, &arrow.DurationType{Unit: a.unit()})
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) || counts.IsNull(i) {
			bldr.AppendNull()
			continue
		}
		step, ok := overflow.Mul64(counts.Value(i), freqUnits)
		if !ok {
			return nil, fmt.Errorf("%w: timedelta shift overflows", arrow.ErrInvalid)
		}
		v, ok := overflow.Add64(int64(a.Value(i)), sign*step)
		if !ok {
			return nil, fmt.Errorf("%w: duration value overflow", arrow.ErrInvalid)
		}
		bldr.Append(arrow.Duration(v))
	}
	return bldr.NewDurationArray(), nil
}

func (a *Timedelta) mul(other any) (*array.Duration, error) {
	n, ok := asInt64(other)
	if !ok {
		return nil, fmt.Errorf("%w: cannot multiply timedelta values by %T", arrow.ErrNotImplemented, other)
	}
	return a.mapValues(func(v int64) (int64, bool) {
		return overflow.Mul64(v, n)
	})
}

func (a *Timedelta) negate() (*array.Duration, error) {
	return a.mapValues(func(v int64) (int64, bool) {
		return overflow.Sub64(0, v)
	})
}

func (a *Timedelta) shiftConst(delta int64) (*array.Duration, error) {
	return a.mapValues(func(v int64) (int64, bool) {
		return overflow.Add64(v, delta)
	})
}

func (a *Timedelta) shiftBy(deltas *array.Duration, sign int64) (*array.Duration, error) {
	if deltas.Len() != a.Len() {
		return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), deltas.Len())
	}
	if deltas.DataType().(*arrow.DurationType).Unit != a.unit() {
		return nil, fmt.Errorf("%w: unit mismatch between timedelta values", arrow.ErrInvalid)
	}

	bldr := array.NewDurationBuilder(a.mem, &arrow.DurationType{Unit: a.unit()})
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) || deltas.IsNull(i) {
			bldr.AppendNull()
			continue
		}
		v, ok := overflow.Add64(int64(a.Value(i)), sign*int64(deltas.Value(i)))
		if !ok {
			return nil, fmt.Errorf("%w: duration value overflow", arrow.ErrInvalid)
		}
		bldr.Append(arrow.Duration(v))
	}
	return bldr.NewDurationArray(), nil
}

func (a *Timedelta) mapValues(f func(int64) (int64, bool)) (*array.Duration, error) {
	bldr := array.NewDurationBuilder(a.mem, &arrow.DurationType{Unit: a.unit()})
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) {
			bldr.AppendNull()
			continue
		}
		v, ok := f(int64(a.Value(i)))
		if !ok {
			return nil, fmt.Errorf("%w: duration value overflow", arrow.ErrInvalid)
		}
		bldr.Append(arrow.Duration(v))
	}
	return bldr.NewDurationArray(), nil
}

func (a *Timedelta) compare(op quiver.Op, other any) (*array.Boolean, error) {
	rhs, err := a.comparand(other)
	if err != nil {
		return nil, err
	}
	return buildBoolean(a.mem, a.Len(),
		func(i int) bool {
			_, valid := rhs(i)
			return valid && !a.IsNull(i)
		},
		func(i int) (bool, error) {
			r, _ := rhs(i)
			return cmpInt64(op, int64(a.Value(i)), r)
		})
}

func (a *Timedelta) comparand(other any) (func(int) (int64, bool), error) {
	switch rhs := other.(type) {
	case time.Duration:
		v := int64(rhs) / int64(a.unit().Multiplier())
		return func(int) (int64, bool) { return v, true }, nil
	case *Timedelta:
		return a.comparand(rhs.values)
	case *array.Duration:
		if rhs.Len() != a.Len() {
			return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), rhs.Len())
		}
		if rhs.DataType().(*arrow.DurationType).Unit != a.unit() {
			return nil, fmt.Errorf("%w: unit mismatch between timedelta values", arrow.ErrInvalid)
		}
		return func(i int) (int64, bool) {
			if rhs.IsNull(i) {
				return 0, false
			}
			return int64(rhs.Value(i)), true
		}, nil
	}
	return nil, fmt.Errorf("%w: cannot compare timedelta values with %T", arrow.ErrNotImplemented, other)
}

var _ quiver.Operable = (*Timedelta)(nil)
var _ quiver.Array = (*Timedelta)(nil)
