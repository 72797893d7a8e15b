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

import (
	"reflect"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/scalar"
)

// Operable is implemented by array representations that own their operator
// implementations: extension arrays and the specialized temporal arrays.
// The dispatch layer routes operations through it instead of the generic
// native path.
type Operable interface {
	// HasOp reports whether the receiver implements op. A missing operator
	// is an expected outcome, not a failure: callers fall back to their
	// generic elementwise path.
	HasOp(op Op) bool

	// ApplyOp applies op with the receiver as the left operand.
	ApplyOp(op Op, other any) (any, error)

	// ApplyReflected applies op with the receiver as the right operand,
	// i.e. other OP receiver. Comparisons are never applied reflected;
	// callers flip them and use ApplyOp.
	ApplyReflected(op Op, other any) (any, error)
}

// Array is the minimal shape the dispatch predicates need from any
// array-like value. arrow.Array, the arrays package types and series all
// satisfy it.
type Array interface {
	Len() int
	DataType() arrow.DataType
}

// IsScalar reports whether v is a single value as opposed to an array-like.
// Arrow scalars count as scalars even when their declared type is an
// extension type: a lone extension-tagged value, e.g. a categorical element,
// must not force extension dispatch the way an extension array does.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case scalar.Scalar:
		return true
	case Array:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return false
	}
	return true
}
