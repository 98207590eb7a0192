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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Value
	}{
		{name: "Null", json: "null", want: Null()},
		{name: "True", json: "true", want: Boolean(true)},
		{name: "Integer", json: "42", want: Int(42)},
		{name: "NumberTextKept", json: "1.50", want: Number("1.50")},
		{name: "String", json: `"a \"b\""`, want: String(`a "b"`)},
		{name: "EmptyList", json: "[]", want: List()},
		{name: "EmptyObject", json: "{}", want: Object()},
		{
			name: "KeyOrder",
			json: `{"name":"x","id":1,"active":false}`,
			want: Object(
				Field{"name", String("x")},
				Field{"id", Int(1)},
				Field{"active", Boolean(false)},
			),
		},
		{
			name: "RepeatedKey",
			json: `{"b":1,"a":2,"b":3}`,
			want: Object(Field{"b", Int(3)}, Field{"a", Int(2)}),
		},
		{
			name: "Nested",
			json: `{"assessments":[{"id":null}],"meta":{"tags":["a",null]}}`,
			want: Object(
				Field{"assessments", List(Object(Field{"id", Null()}))},
				Field{"meta", Object(Field{"tags", List(String("a"), Null())})},
			),
		},
		{
			name: "SentinelObjectStaysObject",
			json: `{"enumValue":"FOO"}`,
			want: Object(Field{"enumValue", String("FOO")}),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got Value
			if err := json.Unmarshal([]byte(test.json), &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(Value{})); diff != "" {
				t.Errorf("json.Unmarshal(%q) (-want +got):\n%s", test.json, diff)
			}
		})
	}
}

func TestValueUnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "Empty", json: ""},
		{name: "Trailing", json: "1 2"},
		{name: "Unterminated", json: `{"a":[1`},
		{name: "BadToken", json: "{,}"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got Value
			if err := got.UnmarshalJSON([]byte(test.json)); err == nil {
				t.Errorf("UnmarshalJSON(%q) = <nil>; want error", test.json)
			}
		})
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	const doc = `{"z":[1,"two",{"x":null}],"a":true}`
	var v Value
	if err := json.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatal(err)
	}
	got, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != doc {
		t.Errorf("json.Marshal(json.Unmarshal(%s)) = %s", doc, got)
	}
}
