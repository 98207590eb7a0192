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
	"bytes"
	"encoding/json"
	"io"

	"github.com/elliotchance/orderedmap/v3"
	"golang.org/x/xerrors"
)

// UnmarshalJSON converts JSON into a value. Object keys keep the order they
// have in the document; a repeated key keeps its first position and its last
// value. Numbers keep their literal text. JSON has no enums, so every string
// becomes a string value.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	val, err := decodeJSON(dec)
	if err != nil {
		return xerrors.Errorf("unmarshal GraphQL value: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return xerrors.New("unmarshal GraphQL value: trailing data after JSON value")
	}
	*v = val
	return nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, io.ErrUnexpectedEOF
	}
	if err != nil {
		return Value{}, err
	}
	switch tok := tok.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Boolean(tok), nil
	case json.Number:
		return Number(string(tok)), nil
	case string:
		return String(tok), nil
	case json.Delim:
		switch tok {
		case '[':
			list := []Value{}
			for dec.More() {
				elem, err := decodeJSON(dec)
				if err != nil {
					return Value{}, xerrors.Errorf("list[%d]: %w", len(list), err)
				}
				list = append(list, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: ListKind, val: list}, nil
		case '{':
			m := orderedmap.NewOrderedMap[string, Value]()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key := keyTok.(string)
				fv, err := decodeJSON(dec)
				if err != nil {
					return Value{}, xerrors.Errorf("field %s: %w", key, err)
				}
				m.Set(key, fv)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return objectFromMap(m), nil
		}
	}
	return Value{}, xerrors.Errorf("unexpected JSON token %v", tok)
}
