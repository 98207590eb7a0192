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

// Literal returns v in GraphQL input syntax. Null is written as the empty
// string, so a null list element leaves an empty slot: [1,,3]. Strings have
// their double quotes escaped and no other characters altered.
func (v Value) Literal() string {
	return string(v.AppendLiteral(nil))
}

// AppendLiteral appends the literal form of v to dst, as described in
// Literal, and returns the extended buffer.
func (v Value) AppendLiteral(dst []byte) []byte {
	switch v.kind {
	case NullKind:
		return dst
	case StringKind:
		return appendQuoted(dst, v.val.(string))
	case ListKind:
		dst = append(dst, '[')
		for i, elem := range v.val.([]Value) {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.AppendLiteral(dst)
		}
		return append(dst, ']')
	case ObjectKind:
		dst = append(dst, '{')
		for i, f := range v.val.([]Field) {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, f.Key...)
			dst = append(dst, ':')
			dst = f.Value.AppendLiteral(dst)
		}
		return append(dst, '}')
	default:
		// Booleans, numbers, and enums are bare tokens.
		return append(dst, v.val.(string)...)
	}
}

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			dst = append(dst, '\\')
		}
		dst = append(dst, s[i])
	}
	return append(dst, '"')
}

// Arguments returns the fields of obj as a comma-separated argument list,
// like `id:1,name:"x"`. Fields with null values are omitted. A null or
// non-object obj produces the empty string.
func Arguments(obj Value) string {
	return string(AppendArguments(nil, obj))
}

// AppendArguments appends the argument list for obj to dst, as described in
// Arguments, and returns the extended buffer.
func AppendArguments(dst []byte, obj Value) []byte {
	if obj.kind != ObjectKind {
		return dst
	}
	first := true
	for _, f := range obj.val.([]Field) {
		if f.Value.IsNull() {
			continue
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = append(dst, f.Key...)
		dst = append(dst, ':')
		dst = f.Value.AppendLiteral(dst)
	}
	return dst
}

// Selection returns the selection set described by shape, like
// `{id,author{name}}`. Only the structure of shape matters:
//
//   - An object selects each of its keys in order. A key whose value is an
//     object is followed by that object's selection set.
//   - A non-empty list stands for its first element; the rest are ignored.
//   - Anything else, including null and empty lists, is a leaf.
//
// Leaves and objects without fields produce the empty string.
func Selection(shape Value) string {
	return string(AppendSelection(nil, shape))
}

// AppendSelection appends the selection set for shape to dst, as described
// in Selection, and returns the extended buffer.
func AppendSelection(dst []byte, shape Value) []byte {
	switch shape.kind {
	case ListKind:
		list := shape.val.([]Value)
		if len(list) == 0 {
			return dst
		}
		return AppendSelection(dst, list[0])
	case ObjectKind:
		fields := shape.val.([]Field)
		if len(fields) == 0 {
			return dst
		}
		dst = append(dst, '{')
		for i, f := range fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, f.Key...)
			dst = AppendSelection(dst, f.Value)
		}
		return append(dst, '}')
	default:
		return dst
	}
}
