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
	"reflect"
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"

	"github.com/quiverdata/quiver"
)

// ExtensionNameNullableInt is the registered identifier of the nullable
// integer extension type.
const ExtensionNameNullableInt = "quiver.nullable_int64"

func init() {
	if arrow.GetExtensionType(ExtensionNameNullableInt) == nil {
		if err := arrow.RegisterExtensionType(NewNullableIntType()); err != nil {
			panic(err)
		}
	}
}

// NullableIntType is an extension type for integers with null-propagating
// arithmetic, stored as int64.
type NullableIntType struct {
	arrow.ExtensionBase
}

func NewNullableIntType() *NullableIntType {
	return &NullableIntType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.PrimitiveTypes.Int64}}
}

func (t *NullableIntType) ArrayType() reflect.Type { return reflect.TypeOf(NullableIntArray{}) }

func (t *NullableIntType) Deserialize(storageType arrow.DataType, data string) (arrow.ExtensionType, error) {
	if data != ExtensionNameNullableInt {
		return nil, fmt.Errorf("type identifier did not match: '%s'", data)
	}
	if !arrow.TypeEqual(storageType, arrow.PrimitiveTypes.Int64) {
		return nil, fmt.Errorf("invalid storage type for NullableIntType: %s", storageType.Name())
	}
	return NewNullableIntType(), nil
}

func (t *NullableIntType) ExtensionEquals(other arrow.ExtensionType) bool {
	return t.ExtensionName() == other.ExtensionName()
}

func (t *NullableIntType) ExtensionName() string { return ExtensionNameNullableInt }

func (t *NullableIntType) Serialize() string { return ExtensionNameNullableInt }

func (t *NullableIntType) String() string { return fmt.Sprintf("NullableInt<storage=%s>", t.Storage) }

func (*NullableIntType) NewBuilder(bldr *array.ExtensionBuilder) array.Builder {
	return NewNullableIntBuilder(bldr)
}

// NullableIntArray is an array of nullable integers. Arithmetic propagates
// nulls elementwise instead of poisoning the whole column.
type NullableIntArray struct {
	array.ExtensionArrayBase
}

func (a *NullableIntArray) Value(i int) int64 {
	return a.Storage().(*array.Int64).Value(i)
}

func (a *NullableIntArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return array.NullValueStr
	}
	return fmt.Sprint(a.Value(i))
}

func (a *NullableIntArray) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		o.WriteString(a.ValueStr(i))
	}
	o.WriteString("]")
	return o.String()
}

func (a *NullableIntArray) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		values[i] = a.GetOneForMarshal(i)
	}
	return json.Marshal(values)
}

func (a *NullableIntArray) GetOneForMarshal(i int) interface{} {
	if a.IsNull(i) {
		return nil
	}
	return a.Value(i)
}

// HasOp reports the operators NullableIntArray implements: add, sub, mul
// and equality.
func (a *NullableIntArray) HasOp(op quiver.Op) bool {
	switch op {
	case quiver.OpAdd, quiver.OpSub, quiver.OpMul, quiver.OpEq, quiver.OpNe:
		return true
	}
	return false
}

func (a *NullableIntArray) ApplyOp(op quiver.Op, other any) (any, error) {
	rhs, err := a.operand(other)
	if err != nil {
		return nil, err
	}
	switch op {
	case quiver.OpAdd:
		return a.mapBinary(rhs, overflow.Add64)
	case quiver.OpSub:
		return a.mapBinary(rhs, overflow.Sub64)
	case quiver.OpMul:
		return a.mapBinary(rhs, overflow.Mul64)
	case quiver.OpEq, quiver.OpNe:
		return buildBoolean(memory.DefaultAllocator, a.Len(),
			func(i int) bool {
				_, valid := rhs(i)
				return valid && !a.IsNull(i)
			},
			func(i int) (bool, error) {
				r, _ := rhs(i)
				return cmpInt64(op, a.Value(i), r)
			})
	}
	return nil, fmt.Errorf("%w: %s on nullable integer values", arrow.ErrNotImplemented, op)
}

func (a *NullableIntArray) ApplyReflected(op quiver.Op, other any) (any, error) {
	switch op {
	case quiver.OpAdd, quiver.OpMul, quiver.OpEq, quiver.OpNe:
		// commutative
		return a.ApplyOp(op, other)
	case quiver.OpSub:
		res, err := a.ApplyOp(quiver.OpMul, int64(-1))
		if err != nil {
			return nil, err
		}
		neg := res.(*NullableIntArray)
		defer neg.Release()
		return neg.ApplyOp(quiver.OpAdd, other)
	}
	return nil, fmt.Errorf("%w: reflected %s on nullable integer values", arrow.ErrNotImplemented, op)
}

// operand turns other into an indexed accessor over int64 values.
func (a *NullableIntArray) operand(other any) (func(int) (int64, bool), error) {
	if n, ok := asInt64(other); ok {
		return func(int) (int64, bool) { return n, true }, nil
	}
	var rhs interface {
		Len() int
		IsNull(int) bool
		Value(int) int64
	}
	switch v := other.(type) {
	case *NullableIntArray:
		rhs = v
	case *array.Int64:
		rhs = v
	default:
		return nil, fmt.Errorf("%w: cannot operate on nullable integer values and %T", arrow.ErrNotImplemented, other)
	}
	if rhs.Len() != a.Len() {
		return nil, fmt.Errorf("%w: length mismatch %d vs %d", arrow.ErrInvalid, a.Len(), rhs.Len())
	}
	return func(i int) (int64, bool) {
		if rhs.IsNull(i) {
			return 0, false
		}
		return rhs.Value(i), true
	}, nil
}

func (a *NullableIntArray) mapBinary(rhs func(int) (int64, bool), f func(int64, int64) (int64, bool)) (*NullableIntArray, error) {
	eb := array.NewExtensionBuilder(memory.DefaultAllocator, NewNullableIntType())
	defer eb.Release()
	bldr := NewNullableIntBuilder(eb)
	defer bldr.Release()

	for i := 0; i < a.Len(); i++ {
		r, valid := rhs(i)
		if a.IsNull(i) || !valid {
			bldr.AppendNull()
			continue
		}
		v, ok := f(a.Value(i), r)
		if !ok {
			return nil, fmt.Errorf("%w: integer value overflow", arrow.ErrInvalid)
		}
		bldr.Append(v)
	}
	return bldr.NewNullableIntArray(), nil
}

// NullableIntBuilder builds NullableIntArrays from int64 values directly
// rather than through the storage type.
type NullableIntBuilder struct {
	*array.ExtensionBuilder
}

func NewNullableIntBuilder(builder *array.ExtensionBuilder) *NullableIntBuilder {
	builder.Retain()
	return &NullableIntBuilder{ExtensionBuilder: builder}
}

func (b *NullableIntBuilder) Append(v int64) {
	b.ExtensionBuilder.Builder.(*array.Int64Builder).Append(v)
}

func (b *NullableIntBuilder) AppendValues(vs []int64, valid []bool) {
	b.ExtensionBuilder.Builder.(*array.Int64Builder).AppendValues(vs, valid)
}

func (b *NullableIntBuilder) NewNullableIntArray() *NullableIntArray {
	return b.NewExtensionArray().(*NullableIntArray)
}

var (
	_ arrow.ExtensionType  = (*NullableIntType)(nil)
	_ array.ExtensionArray = (*NullableIntArray)(nil)
	_ array.Builder        = (*NullableIntBuilder)(nil)
	_ quiver.Operable      = (*NullableIntArray)(nil)
)
