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

// Package ops is the operator-dispatch resolution layer: given an operation
// over operands of possibly different storage representations, it decides
// which implementation runs and performs the handoff.
//
// Three collaborating pieces:
//
//   - ShouldExtensionDispatch and ShouldSeriesDispatch answer whether an
//     operation must leave the generic bulk path: the former routes a series
//     operation through the left operand's own operator implementation, the
//     latter decomposes a frame pair into per-column operations.
//
//   - DispatchToExtensionOp performs the handoff for a single operand pair:
//     native temporal arrays are normalized into their specialized
//     representation, the operand's operator runs, and a null-frequency
//     failure is translated into the generic incompatible-operation error
//     unless explicitly suppressed.
//
//   - MaybeDispatchUfunc bridges a generic elementwise-engine invocation,
//     identified by ufunc name and positional operands, onto the operator
//     the owning array implements, respecting operand order and the
//     reflected-operator convention. An inapplicable invocation yields a
//     not-handled result, never an error: the engine falls back to its own
//     elementwise path.
//
// FrameOp and DispatchToSeries compose the pieces into the column-wise
// execution the predicates exist for, with arrow compute kernels as the
// generic native path.
package ops
