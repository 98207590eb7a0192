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

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"
)

// A Value is a GraphQL input value. The zero value is null.
//
// Values are immutable: constructors copy their arguments, so a Value never
// shares memory with the caller and can be used from multiple goroutines.
type Value struct {
	kind Kind
	val  interface{} // one of nil, string, []Value, or []Field.
}

// Field is a member of an object value.
type Field struct {
	Key   string
	Value Value
}

// Kind identifies the variant of a Value.
type Kind int

// Value kinds.
const (
	NullKind Kind = iota
	BooleanKind
	NumberKind
	StringKind
	EnumKind
	ListKind
	ObjectKind
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BooleanKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case EnumKind:
		return "enum"
	case ListKind:
		return "list"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Null returns the null value. It is the same as the zero Value.
func Null() Value {
	return Value{}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{kind: BooleanKind, val: strconv.FormatBool(b)}
}

// Int returns an integer number value.
func Int(i int64) Value {
	return Value{kind: NumberKind, val: strconv.FormatInt(i, 10)}
}

// Float returns a floating point number value. Finite numbers use decimal
// notation unless the magnitude is below 1e-6 or at least 1e21, in which
// case exponent notation is used. NaN and infinities are written as "NaN",
// "Infinity", and "-Infinity", which are not valid GraphQL.
func Float(f float64) Value {
	return Value{kind: NumberKind, val: formatFloat(f, 64)}
}

// Number returns a number value whose literal text is lit. The text is used
// verbatim and is not checked.
func Number(lit string) Value {
	return Value{kind: NumberKind, val: lit}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: StringKind, val: s}
}

// Enum returns an enum value. Enums are written as bare names, without
// quotes or escaping.
func Enum(name string) Value {
	return Value{kind: EnumKind, val: name}
}

// List returns a list value containing a copy of elems.
func List(elems ...Value) Value {
	list := make([]Value, len(elems))
	copy(list, elems)
	return Value{kind: ListKind, val: list}
}

// Object returns an object value with the given fields in order. If a key
// appears more than once, the field stays at the position of its first
// appearance and takes the value of its last.
func Object(fields ...Field) Value {
	m := orderedmap.NewOrderedMap[string, Value]()
	for _, f := range fields {
		m.Set(f.Key, f.Value)
	}
	return objectFromMap(m)
}

func objectFromMap(m *orderedmap.OrderedMap[string, Value]) Value {
	fields := make([]Field, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		fields = append(fields, Field{Key: el.Key, Value: el.Value})
	}
	return Value{kind: ObjectKind, val: fields}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// Boolean reports if v is a boolean with the value true.
func (v Value) Boolean() bool {
	return v.kind == BooleanKind && v.val == "true"
}

// Scalar returns the text of a boolean, number, string, or enum value or the
// empty string otherwise. Strings are returned unquoted.
func (v Value) Scalar() string {
	s, _ := v.val.(string)
	return s
}

// Len returns the number of elements in v. Len panics if v is not a list or
// null.
func (v Value) Len() int {
	if v.kind == NullKind {
		return 0
	}
	return len(v.val.([]Value))
}

// At returns v's i'th element. At panics if v is not a list or i is not in the
// range [0, v.Len()).
func (v Value) At(i int) Value {
	list := v.val.([]Value)
	return list[i]
}

// NumFields returns the number of fields in v. NumFields panics if v is not
// null or an object.
func (v Value) NumFields() int {
	switch val := v.val.(type) {
	case nil:
		return 0
	case []Field:
		return len(val)
	default:
		panic(fmt.Sprintf("invalid value for NumFields: %v", v.kind))
	}
}

// Field returns v's i'th field. Field panics if v is not an object or i is not
// in the range [0, v.NumFields()).
func (v Value) Field(i int) Field {
	fields := v.val.([]Field)
	return fields[i]
}

// ValueFor returns the value of the field with the given key or the zero Value
// if v does not have the given key. ValueFor panics if v is not an object.
func (v Value) ValueFor(key string) Value {
	fields, ok := v.val.([]Field)
	if !ok || v.kind != ObjectKind {
		panic(fmt.Sprintf("invalid value for ValueFor(): %v", v.kind))
	}
	for _, f := range fields {
		if f.Key == key {
			return f.Value
		}
	}
	return Value{}
}

// MarshalJSON converts the value to JSON. Enums are written as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case NullKind:
		return []byte("null"), nil
	case BooleanKind, NumberKind:
		// Can use as JSON literal.
		return []byte(v.val.(string)), nil
	case StringKind, EnumKind:
		return json.Marshal(v.val.(string))
	case ListKind:
		return json.Marshal(v.val.([]Value))
	case ObjectKind:
		var buf []byte
		buf = append(buf, '{')
		for i, f := range v.val.([]Field) {
			if i > 0 {
				buf = append(buf, ',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return nil, err
			}
			buf = append(buf, key...)
			buf = append(buf, ':')
			fval, err := json.Marshal(f.Value)
			if err != nil {
				return nil, err
			}
			buf = append(buf, fval...)
		}
		buf = append(buf, '}')
		return buf, nil
	default:
		panic("unknown kind in Value")
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Also covers negative zero.
		return "0"
	}
	format := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	b := strconv.AppendFloat(nil, f, format, -1, bitSize)
	if format == 'e' {
		// Trim a leading zero from a two-digit negative exponent: 1e-07 -> 1e-7.
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
