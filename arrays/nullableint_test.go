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

package arrays_test

import (
	"math"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/suite"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/arrays"
)

type NullableIntSuite struct {
	suite.Suite

	mem *memory.CheckedAllocator
}

func (s *NullableIntSuite) SetupTest() {
	s.mem = memory.NewCheckedAllocator(memory.NewGoAllocator())
}

func (s *NullableIntSuite) TearDownTest() {
	s.mem.AssertSize(s.T(), 0)
}

func (s *NullableIntSuite) build(vals []int64, valid []bool) *arrays.NullableIntArray {
	eb := array.NewExtensionBuilder(s.mem, arrays.NewNullableIntType())
	defer eb.Release()
	bldr := arrays.NewNullableIntBuilder(eb)
	defer bldr.Release()
	bldr.AppendValues(vals, valid)
	return bldr.NewNullableIntArray()
}

func (s *NullableIntSuite) TestTypeIdentity() {
	arr := s.build([]int64{1, 2}, nil)
	defer arr.Release()

	s.Equal(arrow.EXTENSION, arr.DataType().ID())
	s.True(quiver.IsExtensionType(arr.DataType()))
	s.Equal(quiver.KindExtension, quiver.KindOf(arr.DataType()))

	// registered types round-trip through the registry
	s.NotNil(arrow.GetExtensionType(arrays.ExtensionNameNullableInt))
}

func (s *NullableIntSuite) TestAddScalar() {
	arr := s.build([]int64{1, 2, 3}, []bool{true, false, true})
	defer arr.Release()

	res, err := arr.ApplyOp(quiver.OpAdd, 5)
	s.Require().NoError(err)
	sum := res.(*arrays.NullableIntArray)
	defer sum.Release()

	s.Equal(int64(6), sum.Value(0))
	s.True(sum.IsNull(1), "nulls propagate")
	s.Equal(int64(8), sum.Value(2))
}

func (s *NullableIntSuite) TestAddArray() {
	lhs := s.build([]int64{1, 2, 3}, []bool{true, true, false})
	defer lhs.Release()
	rhs := s.build([]int64{10, 20, 30}, []bool{true, false, true})
	defer rhs.Release()

	res, err := lhs.ApplyOp(quiver.OpAdd, rhs)
	s.Require().NoError(err)
	sum := res.(*arrays.NullableIntArray)
	defer sum.Release()

	s.Equal(int64(11), sum.Value(0))
	s.True(sum.IsNull(1))
	s.True(sum.IsNull(2))
}

func (s *NullableIntSuite) TestReflectedSub() {
	arr := s.build([]int64{1, 2}, nil)
	defer arr.Release()

	// 10 - values
	res, err := arr.ApplyReflected(quiver.OpSub, 10)
	s.Require().NoError(err)
	rsub := res.(*arrays.NullableIntArray)
	defer rsub.Release()

	s.Equal(int64(9), rsub.Value(0))
	s.Equal(int64(8), rsub.Value(1))
}

func (s *NullableIntSuite) TestEquality() {
	lhs := s.build([]int64{1, 2, 3}, []bool{true, true, false})
	defer lhs.Release()

	res, err := lhs.ApplyOp(quiver.OpEq, 2)
	s.Require().NoError(err)
	eq := res.(*array.Boolean)
	defer eq.Release()

	s.False(eq.Value(0))
	s.True(eq.Value(1))
	s.True(eq.IsNull(2), "null compares to null, not false")
}

func (s *NullableIntSuite) TestOverflow() {
	arr := s.build([]int64{math.MaxInt64}, nil)
	defer arr.Release()

	_, err := arr.ApplyOp(quiver.OpAdd, 1)
	s.ErrorIs(err, arrow.ErrInvalid)
}

func (s *NullableIntSuite) TestUnsupported() {
	arr := s.build([]int64{1}, nil)
	defer arr.Release()

	s.False(arr.HasOp(quiver.OpLt))
	s.False(arr.HasOp(quiver.OpDivmod))
	s.True(arr.HasOp(quiver.OpMul))

	_, err := arr.ApplyOp(quiver.OpAdd, "x")
	s.ErrorIs(err, arrow.ErrNotImplemented)
}

func (s *NullableIntSuite) TestSpecializePassthrough() {
	arr := s.build([]int64{1}, nil)
	defer arr.Release()

	// extension arrays carry their own operators and must not be wrapped
	_, ok := arrays.Specialize(arr)
	s.False(ok)
}

func TestNullableInt(t *testing.T) {
	suite.Run(t, new(NullableIntSuite))
}
