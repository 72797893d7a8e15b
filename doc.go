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

// Package quiver provides the core vocabulary for a labeled columnar frame
// library built on Apache Arrow: a coarse dtype kind taxonomy over
// arrow.DataType, a closed binary operator enum with the reflected-operator
// convention, the Operable capability interface implemented by array
// representations that own their operator implementations, and the sentinel
// errors shared across the dispatch layer.
//
// The operator routing itself lives in the ops package; specialized array
// representations (temporal arrays with frequencies, extension arrays) live
// in the arrays package.
package quiver
