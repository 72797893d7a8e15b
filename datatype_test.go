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

package quiver_test

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/arrays"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		dt   arrow.DataType
		want quiver.Kind
	}{
		{nil, quiver.KindUnknown},
		{arrow.Null, quiver.KindUnknown},
		{arrow.FixedWidthTypes.Boolean, quiver.KindBool},
		{arrow.PrimitiveTypes.Int8, quiver.KindInt},
		{arrow.PrimitiveTypes.Int64, quiver.KindInt},
		{arrow.PrimitiveTypes.Uint32, quiver.KindUint},
		{arrow.PrimitiveTypes.Float64, quiver.KindFloat},
		{&arrow.TimestampType{Unit: arrow.Nanosecond}, quiver.KindDatetime},
		{arrow.FixedWidthTypes.Date32, quiver.KindDatetime},
		{&arrow.DurationType{Unit: arrow.Second}, quiver.KindTimedelta},
		{arrow.BinaryTypes.String, quiver.KindObject},
		{arrow.FixedWidthTypes.MonthInterval, quiver.KindObject},
		{arrow.ListOf(arrow.PrimitiveTypes.Int64), quiver.KindObject},
		{arrays.NewNullableIntType(), quiver.KindExtension},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quiver.KindOf(tt.dt), "KindOf(%v)", tt.dt)
	}
}

func TestKindPredicates(t *testing.T) {
	ts := &arrow.TimestampType{Unit: arrow.Millisecond}
	dur := &arrow.DurationType{Unit: arrow.Millisecond}

	assert.True(t, quiver.IsDatetime64(ts))
	assert.False(t, quiver.IsDatetime64(dur))

	assert.True(t, quiver.IsTimedelta64(dur))
	assert.False(t, quiver.IsTimedelta64(ts))

	assert.True(t, quiver.IsInteger(arrow.PrimitiveTypes.Int16))
	assert.True(t, quiver.IsInteger(arrow.PrimitiveTypes.Uint64))
	assert.False(t, quiver.IsInteger(arrow.PrimitiveTypes.Float32))

	assert.True(t, quiver.IsObject(arrow.BinaryTypes.String))
	assert.False(t, quiver.IsObject(arrow.PrimitiveTypes.Int64))

	assert.True(t, quiver.IsExtensionType(arrays.NewNullableIntType()))
	assert.False(t, quiver.IsExtensionType(arrow.PrimitiveTypes.Int64))
	assert.False(t, quiver.IsExtensionType(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "datetime", quiver.KindDatetime.String())
	assert.Equal(t, "extension", quiver.KindExtension.String())
	assert.Equal(t, "unknown", quiver.KindUnknown.String())
}
