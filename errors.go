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

import "errors"

var (
	// ErrNullFrequency signals a temporal array without a defined regular
	// interval being used in an operation that requires one, such as
	// shifting by an integer count.
	ErrNullFrequency = errors.New("null frequency")

	// ErrIncompatibleOp is the generic failure the dispatch bridge
	// translates a null-frequency condition into. It is always wrapped
	// with the name of the operator that failed.
	ErrIncompatibleOp = errors.New("incompatible type for a datetime/timedelta operation")
)
