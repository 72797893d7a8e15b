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

package ops

import (
	"github.com/apache/arrow/go/v17/arrow"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/frame"
	"github.com/quiverdata/quiver/series"
)

// ShouldExtensionDispatch reports whether a series operation must be routed
// through the left operand's own operator implementation rather than the
// generic native path. It is pure and total: no failure modes, no side
// effects on either operand.
func ShouldExtensionDispatch(left *series.Series, right any) bool {
	dt := left.DataType()
	if quiver.IsExtensionType(dt) || quiver.IsDatetime64(dt) || quiver.IsTimedelta64(dt) {
		return true
	}

	// Scalars are excluded on purpose: a lone value tagged with an
	// extension dtype, e.g. a categorical element, must not force
	// dispatch. Only array-shaped extension operands do.
	if !quiver.IsScalar(right) && quiver.IsExtensionType(dataTypeOf(right)) {
		return true
	}

	return false
}

// ShouldSeriesDispatch reports whether a frame-level operation should be
// decomposed into per-column series operations instead of executing as one
// bulk operation. The cheap structural answers come first; the first-column
// dtype checks only run on non-empty homogeneous frames.
func ShouldSeriesDispatch(left, right *frame.Frame, op quiver.Operator) bool {
	if left.IsMixedType() || right.IsMixedType() {
		return true
	}

	if left.NumCols() == 0 || right.NumCols() == 0 {
		// the first-column dtype reads below need at least one column
		return false
	}

	ldt := left.Column(0).DataType()
	rdt := right.Column(0).DataType()

	if (quiver.IsTimedelta64(ldt) && quiver.IsInteger(rdt)) ||
		(quiver.IsTimedelta64(rdt) && quiver.IsInteger(ldt)) {
		// timedelta/integer arithmetic has special-cased semantics the
		// bulk path does not support
		return true
	}

	if quiver.IsDatetime64(ldt) && quiver.IsObject(rdt) {
		// in particular the case where right holds an array of date
		// offsets
		return true
	}

	return false
}

func dataTypeOf(v any) arrow.DataType {
	if dt, ok := v.(interface{ DataType() arrow.DataType }); ok {
		return dt.DataType()
	}
	return nil
}
