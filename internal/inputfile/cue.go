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

package inputfile

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/xerrors"
	"zombiezen.com/go/graphql-builder/graphql"
)

func decodeCUE(name string, data []byte) (graphql.Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return graphql.Value{}, err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return graphql.Value{}, err
	}
	return cueValue(v)
}

func cueValue(v cue.Value) (graphql.Value, error) {
	switch v.Kind() {
	case cue.NullKind:
		return graphql.Null(), nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return graphql.Value{}, err
		}
		return graphql.Boolean(b), nil
	case cue.IntKind:
		i, err := v.Int(nil)
		if err != nil {
			return graphql.Value{}, err
		}
		return graphql.Number(i.String()), nil
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil {
			return graphql.Value{}, err
		}
		return graphql.Float(f), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return graphql.Value{}, err
		}
		return graphql.String(s), nil
	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return graphql.Value{}, err
		}
		return graphql.String(string(b)), nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return graphql.Value{}, err
		}
		var list []graphql.Value
		for iter.Next() {
			elem, err := cueValue(iter.Value())
			if err != nil {
				return graphql.Value{}, xerrors.Errorf("list[%d]: %w", len(list), err)
			}
			list = append(list, elem)
		}
		return graphql.List(list...), nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return graphql.Value{}, err
		}
		var fields []graphql.Field
		for iter.Next() {
			key := iter.Label()
			fv, err := cueValue(iter.Value())
			if err != nil {
				return graphql.Value{}, xerrors.Errorf("field %s: %w", key, err)
			}
			fields = append(fields, graphql.Field{Key: key, Value: fv})
		}
		return graphql.Object(fields...), nil
	case cue.BottomKind:
		return graphql.Value{}, v.Err()
	default:
		return graphql.Value{}, xerrors.Errorf("%v: unsupported CUE kind %v", v.Pos(), v.Kind())
	}
}
