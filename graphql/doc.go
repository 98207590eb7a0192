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

/*
Package graphql builds the text of GraphQL requests from plain data, without
a schema. It is meant for clients that assemble ad-hoc queries and mutations
from records they already have in memory.

# Values

A Value is a schema-less GraphQL input value: null, boolean, number, string,
enum, list, or object. Objects keep their fields in the order they were
given, and that order is reflected in every string built from them. Values
can be constructed directly:

	course := graphql.Object(
		graphql.Field{Key: "name", Value: graphql.String("Intro")},
		graphql.Field{Key: "level", Value: graphql.Enum("BEGINNER")},
	)

or converted from Go values with ValueOf, or decoded from JSON with
encoding/json.

# Literals and arguments

Value.Literal writes a value in GraphQL input syntax. Arguments writes the
fields of an object as an argument list, skipping null fields:

	graphql.Arguments(course) // name:"Intro",level:BEGINNER

# Selection sets

Selection turns a shape into a selection set. The shape's structure, not its
values, decides which fields are selected: objects nest, a list stands for
its first element, and everything else is a leaf.

# Requests

CreateMutation and CreateQuery assemble a method name, an optional alias, an
argument list, and a selection set into a single request string. No
whitespace is inserted between tokens and the output is not validated.
*/
package graphql
