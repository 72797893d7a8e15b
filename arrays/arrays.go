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

// Package arrays provides the specialized array representations that own
// their operator implementations: temporal arrays carrying an optional
// regular frequency and a nullable integer extension array. The ops package
// routes operations to these types through the quiver.Operable interface;
// the generic native path never sees them.
package arrays

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/quiverdata/quiver"
)

// Specialize converts a native temporal array into the specialized
// representation carrying calendar-aware operator implementations. Arrays of
// any other type pass through untouched (ok is false): forcibly wrapping
// them would break representation-sensitive types such as extension arrays.
func Specialize(arr arrow.Array) (quiver.Operable, bool) {
	switch v := arr.(type) {
	case *array.Timestamp:
		return NewDatetime(v, 0, nil), true
	case *array.Duration:
		return NewTimedelta(v, 0, nil), true
	}
	return nil, false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		return int64(n), true
	}
	return 0, false
}

func cmpInt64(op quiver.Op, a, b int64) (bool, error) {
	switch op {
	case quiver.OpEq:
		return a == b, nil
	case quiver.OpNe:
		return a != b, nil
	case quiver.OpLt:
		return a < b, nil
	case quiver.OpLe:
		return a <= b, nil
	case quiver.OpGt:
		return a > b, nil
	case quiver.OpGe:
		return a >= b, nil
	}
	return false, fmt.Errorf("%w: %s is not a comparison", arrow.ErrInvalid, op)
}

// buildBoolean assembles a boolean result array of length n from mem. value
// yields the element at i; valid=false produces a null.
func buildBoolean(mem memory.Allocator, n int, valid func(int) bool, value func(int) (bool, error)) (*array.Boolean, error) {
	bldr := array.NewBooleanBuilder(mem)
	defer bldr.Release()

	for i := 0; i < n; i++ {
		if !valid(i) {
			bldr.AppendNull()
			continue
		}
		v, err := value(i)
		if err != nil {
			return nil, err
		}
		bldr.Append(v)
	}
	return bldr.NewBooleanArray(), nil
}
