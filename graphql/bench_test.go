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

import "testing"

func BenchmarkCreateMutation(b *testing.B) {
	data := Object(
		Field{"name", String("Test course")},
		Field{"question", Object(
			Field{"content", List(
				Object(Field{"answer", String("answer1")}),
				Object(Field{"answer", String("answer2")}),
			)},
			Field{"id", Int(1)},
		)},
	)
	shape := Object(
		Field{"id", Null()},
		Field{"assessments", List(Object(Field{"id", Null()}))},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := CreateMutation(data, shape, "createCourse", "test"); !ok {
			b.Fatal("CreateMutation refused")
		}
	}
}

func BenchmarkValueOf(b *testing.B) {
	type question struct {
		ID      int
		Answers []string
	}
	type course struct {
		Name      string
		Questions []question
	}
	c := course{
		Name: "Test course",
		Questions: []question{
			{ID: 1, Answers: []string{"a", "b"}},
			{ID: 2, Answers: []string{"c"}},
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ValueOf(c); err != nil {
			b.Fatal(err)
		}
	}
}
