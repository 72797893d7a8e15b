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

// Package series provides the labeled 1-D array: a name attached to an
// arrow array. It carries no operator logic of its own; the ops package
// decides how operations on series are routed.
package series

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/goccy/go-json"

	"github.com/quiverdata/quiver"
)

// Series is a named 1-D array.
type Series struct {
	name   string
	values arrow.Array
}

// New creates a Series over values, retaining a reference.
func New(name string, values arrow.Array) *Series {
	values.Retain()
	return &Series{name: name, values: values}
}

// FromInt64 builds an int64 Series. valid may be nil for all-valid values.
func FromInt64(name string, vals []int64, valid []bool, mem memory.Allocator) *Series {
	bldr := array.NewInt64Builder(mem)
	defer bldr.Release()
	bldr.AppendValues(vals, valid)

	arr := bldr.NewInt64Array()
	defer arr.Release()
	return New(name, arr)
}

// FromFloat64 builds a float64 Series. valid may be nil for all-valid values.
func FromFloat64(name string, vals []float64, valid []bool, mem memory.Allocator) *Series {
	bldr := array.NewFloat64Builder(mem)
	defer bldr.Release()
	bldr.AppendValues(vals, valid)

	arr := bldr.NewFloat64Array()
	defer arr.Release()
	return New(name, arr)
}

func (s *Series) Name() string              { return s.name }
func (s *Series) Len() int                  { return s.values.Len() }
func (s *Series) DataType() arrow.DataType  { return s.values.DataType() }
func (s *Series) Kind() quiver.Kind         { return quiver.KindOf(s.values.DataType()) }
func (s *Series) IsNull(i int) bool         { return s.values.IsNull(i) }

// Array returns the underlying values without transferring ownership.
func (s *Series) Array() arrow.Array { return s.values }

func (s *Series) Retain()  { s.values.Retain() }
func (s *Series) Release() { s.values.Release() }

func (s *Series) String() string {
	return fmt.Sprintf("%s: %s %s", s.name, s.DataType(), s.values)
}

func (s *Series) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(s.values)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Name string          `json:"name"`
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}{Name: s.name, Type: s.DataType().String(), Data: data})
}

var _ quiver.Array = (*Series)(nil)
