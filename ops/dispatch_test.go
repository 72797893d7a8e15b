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

package ops_test

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/arrays"
	"github.com/quiverdata/quiver/frame"
	"github.com/quiverdata/quiver/ops"
	"github.com/quiverdata/quiver/series"
)

func int64Series(t *testing.T, mem memory.Allocator, name string, vals []int64) *series.Series {
	t.Helper()
	return series.FromInt64(name, vals, nil, mem)
}

func float64Series(t *testing.T, mem memory.Allocator, name string, vals []float64) *series.Series {
	t.Helper()
	return series.FromFloat64(name, vals, nil, mem)
}

func durationSeries(t *testing.T, mem memory.Allocator, name string, secs []int64) *series.Series {
	t.Helper()
	bldr := array.NewDurationBuilder(mem, &arrow.DurationType{Unit: arrow.Second})
	defer bldr.Release()
	for _, v := range secs {
		bldr.Append(arrow.Duration(v))
	}
	arr := bldr.NewDurationArray()
	defer arr.Release()
	return series.New(name, arr)
}

func timestampSeries(t *testing.T, mem memory.Allocator, name string, secs []int64) *series.Series {
	t.Helper()
	bldr := array.NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Second})
	defer bldr.Release()
	for _, v := range secs {
		bldr.Append(arrow.Timestamp(v))
	}
	arr := bldr.NewTimestampArray()
	defer arr.Release()
	return series.New(name, arr)
}

func stringSeries(t *testing.T, mem memory.Allocator, name string, vals []string) *series.Series {
	t.Helper()
	bldr := array.NewStringBuilder(mem)
	defer bldr.Release()
	bldr.AppendValues(vals, nil)
	arr := bldr.NewStringArray()
	defer arr.Release()
	return series.New(name, arr)
}

func nullableIntSeries(t *testing.T, mem memory.Allocator, name string, vals []int64) *series.Series {
	t.Helper()
	eb := array.NewExtensionBuilder(mem, arrays.NewNullableIntType())
	defer eb.Release()
	bldr := arrays.NewNullableIntBuilder(eb)
	defer bldr.Release()
	bldr.AppendValues(vals, nil)
	arr := bldr.NewNullableIntArray()
	defer arr.Release()
	return series.New(name, arr)
}

// extensionScalar is a lone value tagged with an extension dtype. It is
// scalar-shaped: no Len, not an array.
type extensionScalar struct{}

func (extensionScalar) DataType() arrow.DataType { return arrays.NewNullableIntType() }

func TestShouldExtensionDispatch(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	ints := int64Series(t, mem, "i", []int64{1, 2})
	defer ints.Release()
	ext := nullableIntSeries(t, mem, "e", []int64{1, 2})
	defer ext.Release()
	dur := durationSeries(t, mem, "d", []int64{1, 2})
	defer dur.Release()
	ts := timestampSeries(t, mem, "t", []int64{1, 2})
	defer ts.Release()

	// left dtype decides on its own
	assert.True(t, ops.ShouldExtensionDispatch(ext, int64(5)))
	assert.True(t, ops.ShouldExtensionDispatch(dur, int64(5)))
	assert.True(t, ops.ShouldExtensionDispatch(ts, int64(5)))
	assert.False(t, ops.ShouldExtensionDispatch(ints, int64(5)))

	// array-shaped extension right operand forces dispatch
	assert.True(t, ops.ShouldExtensionDispatch(ints, ext))
	assert.True(t, ops.ShouldExtensionDispatch(ints, ext.Array()))

	// a scalar with an extension dtype must not
	assert.False(t, ops.ShouldExtensionDispatch(ints, extensionScalar{}))

	// plain right operands leave a plain left alone
	assert.False(t, ops.ShouldExtensionDispatch(ints, ints))
	assert.False(t, ops.ShouldExtensionDispatch(ints, nil))
}

func TestShouldSeriesDispatch(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	mkFrame := func(cols ...*series.Series) *frame.Frame {
		f, err := frame.New(cols...)
		require.NoError(t, err)
		return f
	}

	ints := int64Series(t, mem, "i", []int64{1, 2})
	defer ints.Release()
	ints2 := int64Series(t, mem, "i2", []int64{3, 4})
	defer ints2.Release()
	floats := float64Series(t, mem, "f", []float64{1, 2})
	defer floats.Release()
	dur := durationSeries(t, mem, "d", []int64{1, 2})
	defer dur.Release()
	ts := timestampSeries(t, mem, "t", []int64{1, 2})
	defer ts.Release()
	objs := stringSeries(t, mem, "o", []string{"a", "b"})
	defer objs.Release()

	add := quiver.Operator{Op: quiver.OpAdd}

	intFrame := mkFrame(ints, ints2)
	defer intFrame.Release()
	mixedFrame := mkFrame(ints, floats)
	defer mixedFrame.Release()
	emptyFrame := mkFrame()
	defer emptyFrame.Release()
	durFrame := mkFrame(dur)
	defer durFrame.Release()
	intFrame1 := mkFrame(ints)
	defer intFrame1.Release()
	tsFrame := mkFrame(ts)
	defer tsFrame.Release()
	objFrame := mkFrame(objs)
	defer objFrame.Release()

	// mixed dtypes on either side win before anything else
	assert.True(t, ops.ShouldSeriesDispatch(mixedFrame, intFrame, add))
	assert.True(t, ops.ShouldSeriesDispatch(intFrame, mixedFrame, add))

	// zero columns on either side means no first-column checks at all
	assert.False(t, ops.ShouldSeriesDispatch(emptyFrame, intFrame, add))
	assert.False(t, ops.ShouldSeriesDispatch(intFrame, emptyFrame, add))

	// timedelta against integer, both orientations
	assert.True(t, ops.ShouldSeriesDispatch(durFrame, intFrame1, add))
	assert.True(t, ops.ShouldSeriesDispatch(intFrame1, durFrame, add))

	// datetime against object, left orientation only
	assert.True(t, ops.ShouldSeriesDispatch(tsFrame, objFrame, add))
	assert.False(t, ops.ShouldSeriesDispatch(objFrame, tsFrame, add))

	// homogeneous numeric pairs stay on the bulk path
	assert.False(t, ops.ShouldSeriesDispatch(intFrame, intFrame, add))
}
