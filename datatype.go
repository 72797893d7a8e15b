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
	"github.com/apache/arrow/go/v17/arrow"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -linecomment

// Kind classifies an arrow DataType into the coarse storage taxonomy that
// operator routing decisions are made on. It is deliberately much coarser
// than arrow.Type: routing only cares whether storage is native numeric,
// temporal, opaque extension, or generic object-like.
type Kind int8

const (
	// KindUnknown covers the null type and anything not routed specially.
	KindUnknown Kind = iota // unknown

	KindBool  // bool
	KindInt   // int
	KindUint  // uint
	KindFloat // float

	// KindDatetime is timestamp/date storage. The physical layout is a
	// plain fixed-width array, but arithmetic needs calendar and unit
	// awareness the native bulk path does not have.
	KindDatetime // datetime

	// KindTimedelta is duration storage, with the same caveat.
	KindTimedelta // timedelta

	// KindObject covers strings, binaries, intervals and nested or union
	// types: columns whose elements are heterogeneous or opaque values,
	// e.g. an array of date offsets.
	KindObject // object

	// KindExtension is opaque extension-typed storage. It never supports
	// the native bulk path.
	KindExtension // extension
)

// KindOf returns the dispatch kind of dt. A nil DataType maps to KindUnknown.
func KindOf(dt arrow.DataType) Kind {
	if dt == nil {
		return KindUnknown
	}
	switch dt.ID() {
	case arrow.BOOL:
		return KindBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64:
		return KindInt
	case arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return KindUint
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64, arrow.DECIMAL128, arrow.DECIMAL256:
		return KindFloat
	case arrow.TIMESTAMP, arrow.DATE32, arrow.DATE64:
		return KindDatetime
	case arrow.DURATION:
		return KindTimedelta
	case arrow.EXTENSION:
		return KindExtension
	case arrow.STRING, arrow.LARGE_STRING, arrow.BINARY, arrow.LARGE_BINARY,
		arrow.INTERVAL_MONTHS, arrow.INTERVAL_DAY_TIME, arrow.INTERVAL_MONTH_DAY_NANO,
		arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST, arrow.STRUCT,
		arrow.DENSE_UNION, arrow.SPARSE_UNION, arrow.MAP:
		return KindObject
	}
	return KindUnknown
}

// IsDatetime64 reports whether dt is native datetime storage.
func IsDatetime64(dt arrow.DataType) bool { return KindOf(dt) == KindDatetime }

// IsTimedelta64 reports whether dt is native duration storage.
func IsTimedelta64(dt arrow.DataType) bool { return KindOf(dt) == KindTimedelta }

// IsInteger reports whether dt is a signed or unsigned integer type.
func IsInteger(dt arrow.DataType) bool {
	k := KindOf(dt)
	return k == KindInt || k == KindUint
}

// IsObject reports whether dt is generic object-like storage.
func IsObject(dt arrow.DataType) bool { return KindOf(dt) == KindObject }

// IsExtensionType reports whether dt is opaque extension-typed storage.
func IsExtensionType(dt arrow.DataType) bool { return KindOf(dt) == KindExtension }
