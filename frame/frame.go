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

// Package frame provides the labeled 2-D table: an ordered collection of
// named series. Its main job for the dispatch layer is answering cheap
// structural questions, above all whether the columns hold mixed dtypes.
package frame

import (
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"

	"github.com/quiverdata/quiver/internal/debug"
	"github.com/quiverdata/quiver/series"
)

// Frame is an ordered collection of equally long, uniquely named columns.
type Frame struct {
	cols []*series.Series

	// per-column dtype fingerprints, computed at construction so the
	// mixed-type predicate is a flat comparison
	fps []uint64
}

// New creates a Frame over cols, retaining a reference on each. Column
// names must be unique and lengths equal. A frame with zero columns is
// valid.
func New(cols ...*series.Series) (*Frame, error) {
	for i, c := range cols {
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has length %d, want %d",
				arrow.ErrInvalid, c.Name(), c.Len(), cols[0].Len())
		}
		if slices.ContainsFunc(cols[:i], func(prev *series.Series) bool {
			return prev.Name() == c.Name()
		}) {
			return nil, fmt.Errorf("%w: duplicate column name %q", arrow.ErrInvalid, c.Name())
		}
	}

	f := &Frame{
		cols: slices.Clone(cols),
		fps:  make([]uint64, len(cols)),
	}
	for i, c := range cols {
		c.Retain()
		f.fps[i] = fingerprint(c.DataType())
	}
	return f, nil
}

// fingerprint condenses a dtype identity, parameters included, into a
// cheaply comparable value.
func fingerprint(dt arrow.DataType) uint64 {
	return xxh3.HashString(dt.String())
}

func (f *Frame) NumCols() int { return len(f.cols) }

func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Column returns the i-th column without transferring ownership.
func (f *Frame) Column(i int) *series.Series {
	debug.Assert(i >= 0 && i < len(f.cols), "frame: column index out of range")
	return f.cols[i]
}

// ColumnByName returns the named column, or false when absent.
func (f *Frame) ColumnByName(name string) (*series.Series, bool) {
	i := slices.IndexFunc(f.cols, func(c *series.Series) bool { return c.Name() == name })
	if i < 0 {
		return nil, false
	}
	return f.cols[i], true
}

// Dtypes returns the per-column dtype sequence.
func (f *Frame) Dtypes() []arrow.DataType {
	out := make([]arrow.DataType, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.DataType()
	}
	return out
}

// IsMixedType reports whether the columns hold more than one distinct
// dtype. A frame with zero or one column is never mixed.
func (f *Frame) IsMixedType() bool {
	debug.Assert(len(f.fps) == len(f.cols), "frame: fingerprint cache out of sync")
	if len(f.fps) < 2 {
		return false
	}
	for _, fp := range f.fps[1:] {
		if fp != f.fps[0] {
			return true
		}
	}
	return false
}

func (f *Frame) Retain() {
	for _, c := range f.cols {
		c.Retain()
	}
}

func (f *Frame) Release() {
	for _, c := range f.cols {
		c.Release()
	}
}

func (f *Frame) String() string {
	var o strings.Builder
	fmt.Fprintf(&o, "frame[%dx%d]{", f.NumRows(), f.NumCols())
	for i, c := range f.cols {
		if i > 0 {
			o.WriteString(", ")
		}
		fmt.Fprintf(&o, "%s: %s", c.Name(), c.DataType())
	}
	o.WriteString("}")
	return o.String()
}

func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.cols)
}
