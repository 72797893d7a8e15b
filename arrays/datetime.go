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

// Datetime wraps a native timestamp array with the calendar-aware operator
// implementations the generic bulk path cannot provide. An optional
// frequency anchors the values on a regular interval; integer offsets shift
// by multiples of it.
type Datetime struct {
	values *array.Timestamp
	freq   time.Duration // 0 means no regular interval
	mem    memory.Allocator
}

// NewDatetime wraps values, retaining a reference. freq may be 0 for
// unanchored values. Operator results are allocated from mem; nil selects
// the default allocator.
func NewDatetime(values *array.Timestamp, freq time.Duration, mem memory.Allocator) *Datetime {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	values.Retain()
	return &Datetime{values: values, freq: freq, mem: mem}
}

func (a *Datetime) Len() int                 { return a.values.Len() }
func (a *Datetime) DataType() arrow.DataType { return a.values.DataType() }
func (a *Datetime) IsNull(i int) bool        { return a.values.IsNull(i) }
func (a *Datetime) Value(i int) arrow.Timestamp {
	return a.values.Value(i)
}

// Freq returns the regular interval between values, or 0 when unanchored.
func (a *Datetime) Freq() time.Duration { return a.freq }

// Storage returns the wrapped native array without transferring ownership.
func (a *Datetime) Storage() arrow.Array { return a.values }

func (a *Datetime) Retain()  { a.values.Retain() }
func (a *Datetime) Release() { a.values.Release() }

func (a *Datetime) String() string { return a.values.String() }

func (a *Datetime) unit() arrow.TimeUnit {
	return a.values.DataType().(*arrow.TimestampType).Unit
}

// HasOp reports the operators Datetime implements: addition and subtraction
// of offsets and durations, datetime difference, and the six comparisons.
func (a *Datetime) HasOp(op quiver.Op) bool {
	switch op {
	case quiver.OpAdd, quiver.OpSub:
		return true
	}
	return op.IsComparison()
}

func (a *Datetime) ApplyOp(op quiver.Op, other any) (any, error) {
	switch {
	case op == quiver.OpAdd:
		return a.addSub(other, 1)
	case op == quiver.OpSub:
		return a.sub(other)
	case op.IsComparison():
		return a.compare(op, other)
	}
	return nil, fmt.Errorf("%w: %s on datetime values", arrow.ErrNotImplemented, op)
}

func (a *Datetime) ApplyReflected(op quiver.Op, other any) (any, error) {
	switch {
	case op.IsComparison():
		return a.compare(op.Flip(), other)
	case op == quiver.OpAdd:
		// addition commutes
		return a.addSub(other, 1)
	case op == quiver.OpSub:
		return a.rsub(other)
	}
	return nil, fmt.Errorf("%w: reflected %s on datetime values", arrow.ErrNotImplemented, op)
}

// addSub shifts every value forward (sign=1) or backward (sign=-1) by the
// offset described by other.
func (a *Datetime) addSub(other any, sign int64) (any, error) {
	mult := int64(a.unit().Multiplier())

	if n, ok := asInt64(other); ok {
		if a.freq == 0 {
			return nil, fmt.Errorf("%w: cannot shift datetime values with no set frequency", quiver.ErrNullFrequency)
		}
		step, ok := overflow.Mul64(n, int64(a.freq)/mult)
		if !ok {
			return nil, fmt.Errorf("%w: datetime shift overflows", arrow.ErrInvalid)
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
	}
	return nil, fmt.Errorf("%w: cannot add %T to datetime values", arrow.ErrNotImplemented, other)
}

func (a *Datetime) sub(other any) (any, error) {
	switch rhs := other.(type) {
	case *Datetime:
		return a.diff(rhs.values, 1)
	case *array.Timestamp:
		return a.diff(rhs, 1)
	case time.Time:
		return a.diffConst(a.timestampValue(rhs), 1)
	}
	return a.addSub(other, -1)
}

// rsub evaluates other - a.
func (a *Datetime) rsub(other any) (any, error) {
	switch lhs := other.(type) {
	case *Datetime:
		return a.diff(lhs.values, -1)
	case *array.Timestamp:
		return a.diff(lhs, -1)
	case time.Time:
		return a.diffConst(a.timestampValue(lhs), -1)
	}
	return nil, fmt.Errorf("%w: cannot subtract datetime values from %T", arrow.ErrNotImplemented, other)
}

// timestampValue converts t to the array's unit.
func (a *Datetime) timestampValue(t time.Time) int64 {
	return t.UnixNano() / int64(a.unit().Multiplier())
}

func (a *Datetime) shiftConst(delta int64) (*array.Timestamp, error) {
	return a.shift(func(int) (int64, bool) { return delta, true })
}

func (a *Datetime) shiftBy(deltas *array.Duration, sign int64) (*array.Timestamp, error) {
	if deltas.Len() != a.Len() {
		return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), deltas.Len())
	}
	if deltas.DataType().(*arrow.DurationType).Unit != a.unit() {
		return nil, fmt.Errorf("%w: unit mismatch between datetime and duration values", arrow.ErrInvalid)
	}
	return a.shift(func(i int) (int64, bool) {
		if deltas.IsNull(i) {
			return 0, false
		}
		return sign * int64(deltas.Value(i)), true
	})
}

func (a *Datetime) shift(delta func(int) (int64, bool)) (*array.Timestamp, error) {
	bldr := array.NewTimestampBuilder(a.mem, a.values.DataType().(*arrow.TimestampType))
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		d, valid := delta(i)
		if a.IsNull(i) || !valid {
			bldr.AppendNull()
			continue
		}
		v, ok := overflow.Add64(int64(a.Value(i)), d)
		if !ok {
			return nil, fmt.Errorf("%w: timestamp value overflow", arrow.ErrInvalid)
		}
		bldr.Append(arrow.Timestamp(v))
	}
	return bldr.NewTimestampArray(), nil
}

// diff computes (a - rhs)*sign as a duration array in the array's unit.
func (a *Datetime) diff(rhs *array.Timestamp, sign int64) (*array.Duration, error) {
	if rhs.Len() != a.Len() {
		return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), rhs.Len())
	}
	if rhs.DataType().(*arrow.TimestampType).Unit != a.unit() {
		return nil, fmt.Errorf("%w: unit mismatch between datetime values", arrow.ErrInvalid)
	}
	return a.diffAt(func(i int) (int64, bool) {
		if rhs.IsNull(i) {
			return 0, false
		}
		return int64(rhs.Value(i)), true
	}, sign)
}

func (a *Datetime) diffConst(v int64, sign int64) (*array.Duration, error) {
	return a.diffAt(func(int) (int64, bool) { return v, true }, sign)
}

func (a *Datetime) diffAt(rhs func(int) (int64, bool), sign int64) (*array.Duration, error) {
	bldr := array.NewDurationBuilder(a.mem, &arrow.DurationType{Unit: a.unit()})
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		r, valid := rhs(i)
		if a.IsNull(i) || !valid {
			bldr.AppendNull()
			continue
		}
		d, ok := overflow.Sub64(int64(a.Value(i)), r)
		if !ok {
			return nil, fmt.Errorf("%w: duration value overflow", arrow.ErrInvalid)
		}
		bldr.Append(arrow.Duration(sign * d))
	}
	return bldr.NewDurationArray(), nil
}

func (a *Datetime) compare(op quiver.Op, other any) (*array.Boolean, error) {
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

func (a *Datetime) comparand(other any) (func(int) (int64, bool), error) {
	switch rhs := other.(type) {
	case time.Time:
		v := a.timestampValue(rhs)
		return func(int) (int64, bool) { return v, true }, nil
	case *Datetime:
		return a.comparand(rhs.values)
	case *array.Timestamp:
		if rhs.Len() != a.Len() {
			return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), rhs.Len())
		}
		if rhs.DataType().(*arrow.TimestampType).Unit != a.unit() {
			return nil, fmt.Errorf("%w: unit mismatch between datetime values", arrow.ErrInvalid)
		}
		return func(i int) (int64, bool) {
			if rhs.IsNull(i) {
				return 0, false
			}
			return int64(rhs.Value(i)), true
		}, nil
	}
	return nil, fmt.Errorf("%w: cannot compare datetime values with %T", arrow.ErrNotImplemented, other)
}

var _ quiver.Operable = (*Datetime)(nil)
var _ quiver.Array = (*Datetime)(nil)
