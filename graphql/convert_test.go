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
	"net"
	"testing"
	"time"

	"github.com/elliotchance/orderedmap/v3"
)

type testLevel string

func (l testLevel) MarshalGraphQL() (Value, error) {
	return Enum(string(l)), nil
}

type testBase struct {
	ID int
}

type testCourse struct {
	testBase
	Name        string
	Price       *float64
	Tags        []string `graphql:"labels"`
	Level       testLevel
	Subtitle    NullString
	Notes       string `graphql:",omitempty"`
	Secret      string `graphql:"-"`
	URLPath     string
	unexported  int
	Description string `graphql:"summary,omitempty"`
}

type testNode struct {
	Name string
	Next *testNode
}

func TestValueOf(t *testing.T) {
	price := 9.5
	tests := []struct {
		name    string
		goValue interface{}
		want    string
	}{
		{name: "Nil", goValue: nil, want: ""},
		{name: "NilPointer", goValue: (*int)(nil), want: ""},
		{name: "NilSlice", goValue: []int(nil), want: ""},
		{name: "NilMap", goValue: map[string]int(nil), want: ""},
		{name: "Bool", goValue: true, want: "true"},
		{name: "Int", goValue: -3, want: "-3"},
		{name: "Uint", goValue: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "Float32", goValue: float32(0.1), want: "0.1"},
		{name: "Float64", goValue: 2.5, want: "2.5"},
		{name: "String", goValue: `a "b"`, want: `"a \"b\""`},
		{name: "JSONNumber", goValue: json.Number("1.0"), want: "1.0"},
		{name: "Pointer", goValue: &price, want: "9.5"},
		{name: "Value", goValue: Enum("X"), want: "X"},
		{name: "Marshaler", goValue: testLevel("ADVANCED"), want: "ADVANCED"},
		{name: "NullStringInvalid", goValue: NullString{}, want: ""},
		{name: "NullStringValid", goValue: NullString{S: "x", Valid: true}, want: `"x"`},
		{name: "NullIntValid", goValue: NullInt{Int: 5, Valid: true}, want: "5"},
		{name: "TextMarshaler", goValue: net.IPv4(127, 0, 0, 1), want: `"127.0.0.1"`},
		{
			name:    "Time",
			goValue: time.Date(2019, time.March, 1, 12, 0, 0, 0, time.UTC),
			want:    `"2019-03-01T12:00:00Z"`,
		},
		{name: "EmptySlice", goValue: []int{}, want: "[]"},
		{name: "Slice", goValue: []interface{}{1, nil, "x"}, want: `[1,,"x"]`},
		{name: "Array", goValue: [2]bool{true, false}, want: "[true,false]"},
		{
			name:    "MapSortedKeys",
			goValue: map[string]interface{}{"b": 2, "a": 1, "c": nil},
			want:    "{a:1,b:2,c:}",
		},
		{
			name: "Struct",
			goValue: testCourse{
				testBase:    testBase{ID: 1},
				Name:        "Test course",
				Tags:        []string{"go"},
				Level:       "BEGINNER",
				Secret:      "hidden",
				URLPath:     "/x",
				unexported:  4,
				Description: "",
			},
			want: `{name:"Test course",price:,labels:["go"],level:BEGINNER,subtitle:,urlPath:"/x"}`,
		},
		{
			name:    "StructOmitEmptyKept",
			goValue: &testCourse{Notes: "n", Description: "d", Price: &price},
			want:    `{name:"",price:9.5,labels:,level:,subtitle:,notes:"n",urlPath:"",summary:"d"}`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ValueOf(test.goValue)
			if err != nil {
				t.Fatalf("ValueOf(%#v) error: %v", test.goValue, err)
			}
			if lit := got.Literal(); lit != test.want {
				t.Errorf("ValueOf(%#v).Literal() = %q; want %q", test.goValue, lit, test.want)
			}
		})
	}
}

func TestValueOf_EmbeddedStruct(t *testing.T) {
	type Base struct {
		ID   int
		Kind string
	}
	type Derived struct {
		Base
		Name string
	}
	got, err := ValueOf(Derived{Base: Base{ID: 3, Kind: "k"}, Name: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if lit, want := got.Literal(), `{id:3,kind:"k",name:"n"}`; lit != want {
		t.Errorf("ValueOf(...).Literal() = %q; want %q", lit, want)
	}
}

func TestValueOf_OrderedMap(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, interface{}]()
	m.Set("zeta", 1)
	m.Set("alpha", []interface{}{"x"})
	m.Set("mid", nil)
	got, err := ValueOf(m)
	if err != nil {
		t.Fatal(err)
	}
	if lit, want := got.Literal(), `{zeta:1,alpha:["x"],mid:}`; lit != want {
		t.Errorf("ValueOf(ordered map).Literal() = %q; want %q", lit, want)
	}

	vm := orderedmap.NewOrderedMap[string, Value]()
	vm.Set("b", Enum("B"))
	vm.Set("a", Int(1))
	got, err = ValueOf(vm)
	if err != nil {
		t.Fatal(err)
	}
	if lit, want := got.Literal(), `{b:B,a:1}`; lit != want {
		t.Errorf("ValueOf(ordered value map).Literal() = %q; want %q", lit, want)
	}
}

func TestValueOf_Errors(t *testing.T) {
	selfMap := map[string]interface{}{}
	selfMap["self"] = selfMap

	selfSlice := make([]interface{}, 1)
	selfSlice[0] = selfSlice

	loop := &testNode{Name: "a"}
	loop.Next = &testNode{Name: "b", Next: loop}

	selfOrdered := orderedmap.NewOrderedMap[string, interface{}]()
	selfOrdered.Set("self", selfOrdered)

	var selfInterface interface{}
	selfInterface = &selfInterface

	type box struct{ Inner interface{} }
	selfBox := &box{}
	selfBox.Inner = &selfBox

	tests := []struct {
		name    string
		goValue interface{}
	}{
		{name: "Channel", goValue: make(chan int)},
		{name: "Func", goValue: func() {}},
		{name: "Complex", goValue: complex(1, 2)},
		{name: "IntKeys", goValue: map[int]string{1: "a"}},
		{name: "NestedChannel", goValue: []interface{}{1, make(chan int)}},
		{name: "CyclicMap", goValue: selfMap},
		{name: "CyclicSlice", goValue: selfSlice},
		{name: "CyclicPointer", goValue: loop},
		{name: "CyclicOrderedMap", goValue: selfOrdered},
		{name: "CyclicInterface", goValue: selfInterface},
		{name: "CyclicInterfaceField", goValue: selfBox},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ValueOf(test.goValue)
			if err == nil {
				t.Errorf("ValueOf(...) = %s, <nil>; want error", got.Literal())
			}
		})
	}
}

func TestValueOf_SharedNotCyclic(t *testing.T) {
	shared := []int{1, 2}
	got, err := ValueOf(map[string]interface{}{"a": shared, "b": shared})
	if err != nil {
		t.Fatal(err)
	}
	if lit, want := got.Literal(), "{a:[1,2],b:[1,2]}"; lit != want {
		t.Errorf("Literal() = %q; want %q", lit, want)
	}
}

func TestGoToGraphQLFieldName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Name", "name"},
		{"ID", "id"},
		{"URLPath", "urlPath"},
		{"X", "x"},
		{"already", "already"},
		{"HTTPServer", "httpServer"},
	}
	for _, test := range tests {
		if got := goToGraphQLFieldName(test.name); got != test.want {
			t.Errorf("goToGraphQLFieldName(%q) = %q; want %q", test.name, got, test.want)
		}
	}
}
