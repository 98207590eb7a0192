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
	"encoding"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"golang.org/x/xerrors"
)

// Marshaler is implemented by Go types that convert themselves into a
// GraphQL value. Enumerated types typically implement it by returning an
// Enum.
type Marshaler interface {
	MarshalGraphQL() (Value, error)
}

// ValueOf converts a Go value into a GraphQL value by trying the following in
// order:
//
//  1. A nil pointer, interface, map, or slice converts to null.
//  2. A Value is used verbatim.
//  3. Use the Marshaler interface if present.
//  4. Call a method named IsGraphQLNull if present. If it returns true, then
//     convert to null.
//  5. Use the encoding.TextMarshaler interface if present. The text becomes
//     a string.
//  6. Booleans, integers, floating point numbers, json.Number, and strings
//     convert to the corresponding scalar.
//  7. Slices and arrays convert to lists.
//  8. An *orderedmap.OrderedMap[string, V] converts to an object in the
//     map's order.
//  9. Maps with string keys convert to objects with keys in sorted order,
//     since Go maps have no order of their own.
//  10. Structs convert to objects with their exported fields in declaration
//     order. The field name has its leading capitals lowered ("URLPath"
//     becomes "urlPath") unless overridden with a `graphql:"name"` tag.
//     The "omitempty" tag option drops zero values and a tag of "-" skips the
//     field. Exported embedded structs without a tag have their fields
//     inlined.
//
// ValueOf returns an error for channels, functions, complex numbers, and
// values that refer to themselves.
func ValueOf(x interface{}) (Value, error) {
	c := &converter{visiting: make(map[visitKey]struct{})}
	v, err := c.convert(reflect.ValueOf(x))
	if err != nil {
		return Value{}, xerrors.Errorf("convert %T to GraphQL value: %w", x, err)
	}
	return v, nil
}

var (
	valueGoType      = reflect.TypeOf(Value{})
	jsonNumberGoType = reflect.TypeOf(json.Number(""))
)

type converter struct {
	// visiting holds the pointers on the path from the root to the value
	// being converted.
	visiting map[visitKey]struct{}
}

type visitKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

func (c *converter) convert(goValue reflect.Value) (Value, error) {
	for goValue.Kind() == reflect.Interface {
		if goValue.IsNil() {
			return Value{}, nil
		}
		goValue = goValue.Elem()
	}
	if !goValue.IsValid() {
		return Value{}, nil
	}
	switch goValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if goValue.IsNil() {
			return Value{}, nil
		}
	}
	if !goValue.CanInterface() {
		return Value{}, xerrors.Errorf("cannot convert unexported %v", goValue.Type())
	}
	if goValue.Type() == valueGoType {
		return goValue.Interface().(Value), nil
	}
	switch goIface := interfaceValueForAssertions(goValue).(type) {
	case Marshaler:
		v, err := goIface.MarshalGraphQL()
		if err != nil {
			return Value{}, xerrors.Errorf("marshal %v: %w", goValue.Type(), err)
		}
		return v, nil
	case Nullable:
		if goIface.IsGraphQLNull() {
			return Value{}, nil
		}
	}
	switch goIface := interfaceValueForAssertions(goValue).(type) {
	case encoding.TextMarshaler:
		text, err := goIface.MarshalText()
		if err != nil {
			return Value{}, xerrors.Errorf("marshal %v: %w", goValue.Type(), err)
		}
		return String(string(text)), nil
	case *orderedmap.OrderedMap[string, interface{}]:
		return c.orderedMap(goIface)
	case *orderedmap.OrderedMap[string, Value]:
		return objectFromMap(goIface), nil
	}

	switch goValue.Kind() {
	case reflect.Bool:
		return Boolean(goValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(goValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(strconv.FormatUint(goValue.Uint(), 10)), nil
	case reflect.Float32:
		return Number(formatFloat(goValue.Float(), 32)), nil
	case reflect.Float64:
		return Number(formatFloat(goValue.Float(), 64)), nil
	case reflect.String:
		if goValue.Type() == jsonNumberGoType {
			return Number(goValue.String()), nil
		}
		return String(goValue.String()), nil
	case reflect.Ptr:
		leave, err := c.visit(goValue, 0)
		if err != nil {
			return Value{}, err
		}
		defer leave()
		return c.convert(goValue.Elem())
	case reflect.Slice:
		leave, err := c.visit(goValue, goValue.Len())
		if err != nil {
			return Value{}, err
		}
		defer leave()
		return c.list(goValue)
	case reflect.Array:
		return c.list(goValue)
	case reflect.Map:
		if goValue.Type().Key().Kind() != reflect.String {
			return Value{}, xerrors.Errorf("cannot convert %v: map keys must be strings", goValue.Type())
		}
		leave, err := c.visit(goValue, 0)
		if err != nil {
			return Value{}, err
		}
		defer leave()
		return c.goMap(goValue)
	case reflect.Struct:
		fields, err := c.structFields(nil, goValue)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: ObjectKind, val: fields}, nil
	default:
		return Value{}, xerrors.Errorf("cannot convert %v", goValue.Type())
	}
}

// visit marks a pointer as being on the current path. It returns an error if
// the pointer was already there.
func (c *converter) visit(goValue reflect.Value, n int) (leave func(), err error) {
	key := visitKey{ptr: goValue.Pointer(), len: n, typ: goValue.Type()}
	if _, cyclic := c.visiting[key]; cyclic {
		return nil, xerrors.Errorf("cycle through %v", goValue.Type())
	}
	c.visiting[key] = struct{}{}
	return func() { delete(c.visiting, key) }, nil
}

func (c *converter) list(goValue reflect.Value) (Value, error) {
	list := make([]Value, goValue.Len())
	for i := range list {
		var err error
		list[i], err = c.convert(goValue.Index(i))
		if err != nil {
			return Value{}, xerrors.Errorf("list[%d]: %w", i, err)
		}
	}
	return Value{kind: ListKind, val: list}, nil
}

func (c *converter) goMap(goValue reflect.Value) (Value, error) {
	keys := goValue.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fv, err := c.convert(goValue.MapIndex(k))
		if err != nil {
			return Value{}, xerrors.Errorf("field %s: %w", k.String(), err)
		}
		fields = append(fields, Field{Key: k.String(), Value: fv})
	}
	return Value{kind: ObjectKind, val: fields}, nil
}

func (c *converter) orderedMap(m *orderedmap.OrderedMap[string, interface{}]) (Value, error) {
	leave, err := c.visit(reflect.ValueOf(m), 0)
	if err != nil {
		return Value{}, err
	}
	defer leave()
	fields := make([]Field, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		fv, err := c.convert(reflect.ValueOf(el.Value))
		if err != nil {
			return Value{}, xerrors.Errorf("field %s: %w", el.Key, err)
		}
		fields = append(fields, Field{Key: el.Key, Value: fv})
	}
	return Value{kind: ObjectKind, val: fields}, nil
}

// structFields appends the fields of a Go struct to fields.
func (c *converter) structFields(fields []Field, goValue reflect.Value) ([]Field, error) {
	goType := goValue.Type()
	for i, n := 0, goType.NumField(); i < n; i++ {
		goField := goType.Field(i)
		tag, hasTag := goField.Tag.Lookup("graphql")
		if tag == "-" {
			continue
		}
		if goField.PkgPath != "" {
			// Don't consider unexported fields.
			continue
		}
		name, omitEmpty := parseFieldTag(tag)
		fieldValue := goValue.Field(i)
		if goField.Anonymous && !hasTag {
			embedded := fieldValue
			if embedded.Kind() == reflect.Ptr {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				var err error
				fields, err = c.structFields(fields, embedded)
				if err != nil {
					return nil, err
				}
				continue
			}
		}
		if name == "" {
			name = goToGraphQLFieldName(goField.Name)
		}
		if omitEmpty && fieldValue.IsZero() {
			continue
		}
		fv, err := c.convert(fieldValue)
		if err != nil {
			return nil, xerrors.Errorf("field %s: %w", name, err)
		}
		fields = append(fields, Field{Key: name, Value: fv})
	}
	return fields, nil
}

func parseFieldTag(tag string) (name string, omitEmpty bool) {
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

// goToGraphQLFieldName lowers the leading run of capital letters in a Go
// field name. The last capital of a run that continues in lowercase is kept,
// so "URLPath" becomes "urlPath" and "ID" becomes "id".
func goToGraphQLFieldName(name string) string {
	b := []byte(name)
	n := 0
	for n < len(b) && 'A' <= b[n] && b[n] <= 'Z' {
		n++
	}
	if n > 1 && n < len(b) && 'a' <= b[n] && b[n] <= 'z' {
		n--
	}
	for i := 0; i < n; i++ {
		b[i] += 'a' - 'A'
	}
	return string(b)
}

// interfaceValueForAssertions returns the value's innermost pointer or v itself
// if v does not represent a pointer.
func interfaceValueForAssertions(v reflect.Value) interface{} {
	v = unwrapPointer(v)
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface || !v.CanAddr() {
		return v.Interface()
	}
	return v.Addr().Interface()
}

// unwrapPointer follows pointers and interfaces to the first value that is
// neither. It returns the zero reflect.Value for nil and for pointers that
// lead back to themselves; converter.visit reports the latter as a cycle.
func unwrapPointer(v reflect.Value) reflect.Value {
	var seen map[uintptr]struct{}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		if v.Kind() == reflect.Ptr {
			if seen == nil {
				seen = make(map[uintptr]struct{})
			}
			if _, loop := seen[v.Pointer()]; loop {
				return reflect.Value{}
			}
			seen[v.Pointer()] = struct{}{}
		}
		v = v.Elem()
	}
	return v
}
