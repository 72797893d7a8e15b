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
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/quiverdata/quiver"
	"github.com/quiverdata/quiver/arrays"
)

type releasable interface {
	Release()
}

// DispatchToExtensionOp applies op assuming left or right is backed by an
// array implementation that owns the operator. left and right must already
// be unboxed: raw array values, never a series or frame wrapper.
//
// Native temporal arrays are normalized into their specialized
// representation first, because the generic storage does not carry the
// calendar- and unit-aware semantics the operator needs. Every other input
// passes through untouched; wrapping would break representation-sensitive
// types such as nullable integer arrays.
//
// A null-frequency failure from the operand is re-raised unchanged when
// keepNullFreq is set, and otherwise translated into the generic
// incompatible-operation error tagged with the operator name. All other
// errors propagate untouched.
func DispatchToExtensionOp(op quiver.Operator, left, right any, keepNullFreq bool) (any, error) {
	if arr, ok := left.(arrow.Array); ok {
		if sp, ok := arrays.Specialize(arr); ok {
			left = sp
			if r, ok := sp.(releasable); ok {
				defer r.Release()
			}
		}
	}

	target, ok := left.(quiver.Operable)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not provide operator %s",
			arrow.ErrNotImplemented, left, op.Name())
	}

	var (
		res any
		err error
	)
	if op.Reflected {
		res, err = target.ApplyReflected(op.Op, right)
	} else {
		res, err = target.ApplyOp(op.Op, right)
	}
	if err != nil {
		if errors.Is(err, quiver.ErrNullFrequency) {
			// TODO: drop keepNullFreq once the timestamp+integer
			// deprecation window closes and callers stop needing the
			// original error.
			if keepNullFreq {
				return nil, err
			}
			return nil, fmt.Errorf("%w [%s]", quiver.ErrIncompatibleOp, op.Name())
		}
		return nil, err
	}
	return res, nil
}
