// Copyright 2019 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package graphql

import "fmt"

// CreateMutation builds the text of a mutation that calls method with data as
// its arguments:
//
//	name{method(args)selection}
//
// The alias defaults to method when name is empty. The selection set is
// derived from shape (see Selection), or from data when shape is null. The
// argument parentheses are always written, even when every field of data is
// null.
//
// CreateMutation returns false if method is empty or data is null.
func CreateMutation(data, shape Value, method, name string) (string, bool) {
	if method == "" || data.IsNull() {
		return "", false
	}
	if shape.IsNull() {
		shape = data
	}
	buf := make([]byte, 0, 64)
	buf = appendAlias(buf, method, name)
	buf = append(buf, '{')
	buf = append(buf, method...)
	buf = append(buf, '(')
	buf = AppendArguments(buf, data)
	buf = append(buf, ')')
	buf = AppendSelection(buf, shape)
	buf = append(buf, '}')
	return string(buf), true
}

// CreateQuery builds the text of a query that calls method:
//
//	query name{method(args)selection}
//
// The query name defaults to method when name is empty. The argument group
// is written only if params is an object with at least one field; a null
// params or an empty object omits the parentheses entirely.
//
// CreateQuery returns false if method is empty or shape is null.
func CreateQuery(shape Value, method string, params Value, name string) (string, bool) {
	if method == "" || shape.IsNull() {
		return "", false
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, QueryOperation.String()...)
	buf = append(buf, ' ')
	buf = appendAlias(buf, method, name)
	buf = append(buf, '{')
	buf = append(buf, method...)
	if params.Kind() == ObjectKind && params.NumFields() > 0 {
		buf = append(buf, '(')
		buf = AppendArguments(buf, params)
		buf = append(buf, ')')
	}
	buf = AppendSelection(buf, shape)
	buf = append(buf, '}')
	return string(buf), true
}

func appendAlias(dst []byte, method, name string) []byte {
	if name == "" {
		return append(dst, method...)
	}
	return append(dst, name...)
}

// OperationType represents the keywords used to declare operations.
type OperationType int

// Types of operations.
const (
	QueryOperation OperationType = 1 + iota
	MutationOperation
)

// String returns the keyword corresponding to the operation type.
func (typ OperationType) String() string {
	switch typ {
	case QueryOperation:
		return "query"
	case MutationOperation:
		return "mutation"
	default:
		return fmt.Sprintf("OperationType(%d)", int(typ))
	}
}
