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

// Package inputfile decodes data and shape documents into GraphQL values.
// Object keys keep the order in which they appear in the document.
package inputfile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"
	"zombiezen.com/go/graphql-builder/graphql"
)

// Format is the syntax of an input document.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	CUE  Format = "cue"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, CUE}

// ParseFormat returns the format with the given name. The empty string is
// returned as-is and means "infer from the file name".
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return "", nil
	}
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", xerrors.Errorf("unknown input format %q", s)
}

// FormatFor returns the format implied by a file name's extension. Standard
// input ("-") and unrecognized extensions are JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	case ".cue":
		return CUE
	default:
		return JSON
	}
}

// Options controls decoding.
type Options struct {
	// Format overrides the format inferred from the file name.
	Format Format

	// EnumKey, if not empty, names a key that marks an object as an enum:
	// an object that has this key bound to a non-empty string is replaced
	// by an enum with that name. For example, with EnumKey "enumValue",
	// {"enumValue": "FOO"} decodes as the enum FOO.
	EnumKey string
}

// Decode decodes a document. name is used to pick the format and in error
// messages.
func Decode(name string, data []byte, opts Options) (graphql.Value, error) {
	format := opts.Format
	if format == "" {
		format = FormatFor(name)
	}
	var v graphql.Value
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &v)
	case YAML:
		v, err = decodeYAML(data)
	case CUE:
		v, err = decodeCUE(name, data)
	default:
		err = xerrors.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return graphql.Value{}, xerrors.Errorf("decode %s: %w", name, err)
	}
	if opts.EnumKey != "" {
		v = liftEnums(v, opts.EnumKey)
	}
	return v, nil
}

// ReadFile reads and decodes the file at path. A path of "-" reads from
// stdin instead.
func ReadFile(path string, stdin io.Reader, opts Options) (graphql.Value, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return graphql.Value{}, &ReadError{Path: path, Err: err}
	}
	return Decode(path, data, opts)
}

// ReadError is returned by ReadFile when a file cannot be read, as opposed
// to decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "read " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func liftEnums(v graphql.Value, key string) graphql.Value {
	switch v.Kind() {
	case graphql.ListKind:
		list := make([]graphql.Value, v.Len())
		for i := range list {
			list[i] = liftEnums(v.At(i), key)
		}
		return graphql.List(list...)
	case graphql.ObjectKind:
		if name := v.ValueFor(key); name.Kind() == graphql.StringKind && name.Scalar() != "" {
			return graphql.Enum(name.Scalar())
		}
		fields := make([]graphql.Field, v.NumFields())
		for i := range fields {
			f := v.Field(i)
			fields[i] = graphql.Field{Key: f.Key, Value: liftEnums(f.Value, key)}
		}
		return graphql.Object(fields...)
	default:
		return v
	}
}
