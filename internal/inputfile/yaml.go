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
	"strconv"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/graphql-builder/graphql"
)

// enumTag marks a YAML scalar as an enum: `status: !enum ACTIVE`.
const enumTag = "!enum"

// maxYAMLDepth bounds nesting, including nesting reached through aliases.
const maxYAMLDepth = 1000

// Documents that expand to more than aliasRatioRangeLow nodes may only
// reach a shrinking share of them through aliases, as yaml.v3 enforces when
// decoding into Go values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
)

func decodeYAML(data []byte) (graphql.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return graphql.Value{}, err
	}
	d := new(yamlDecoder)
	return d.value(&doc, 0)
}

// yamlDecoder converts a node tree, counting nodes to bound alias expansion.
type yamlDecoder struct {
	decodeCount int
	aliasCount  int
	aliasDepth  int
}

func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= aliasRatioRangeLow:
		return 0.99
	case decodeCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-aliasRatioRangeLow)/float64(aliasRatioRangeHigh-aliasRatioRangeLow))
	}
}

func (d *yamlDecoder) value(n *yaml.Node, depth int) (graphql.Value, error) {
	if depth > maxYAMLDepth {
		return graphql.Value{}, xerrors.Errorf("line %d: nested too deeply", n.Line)
	}
	d.decodeCount++
	if d.aliasDepth > 0 {
		d.aliasCount++
	}
	if d.decodeCount > aliasRatioRangeLow && float64(d.aliasCount)/float64(d.decodeCount) > allowedAliasRatio(d.decodeCount) {
		return graphql.Value{}, xerrors.Errorf("line %d: document contains excessive aliasing", n.Line)
	}
	switch n.Kind {
	case 0:
		// Empty document.
		return graphql.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return graphql.Null(), nil
		}
		return d.value(n.Content[0], depth+1)
	case yaml.AliasNode:
		d.aliasDepth++
		defer func() { d.aliasDepth-- }()
		return d.value(n.Alias, depth+1)
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		list := make([]graphql.Value, 0, len(n.Content))
		for _, elem := range n.Content {
			v, err := d.value(elem, depth+1)
			if err != nil {
				return graphql.Value{}, err
			}
			list = append(list, v)
		}
		return graphql.List(list...), nil
	case yaml.MappingNode:
		fields := make([]graphql.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return graphql.Value{}, xerrors.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if k.ShortTag() == "!!merge" {
				return graphql.Value{}, xerrors.Errorf("line %d: merge keys are not supported", k.Line)
			}
			fv, err := d.value(v, depth+1)
			if err != nil {
				return graphql.Value{}, err
			}
			fields = append(fields, graphql.Field{Key: k.Value, Value: fv})
		}
		return graphql.Object(fields...), nil
	default:
		return graphql.Value{}, xerrors.Errorf("line %d: unknown node kind %d", n.Line, n.Kind)
	}
}

func yamlScalar(n *yaml.Node) (graphql.Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return graphql.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return graphql.Value{}, err
		}
		return graphql.Boolean(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return graphql.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return graphql.Value{}, xerrors.Errorf("line %d: integer %s out of range", n.Line, n.Value)
		}
		return graphql.Number(strconv.FormatUint(u, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return graphql.Value{}, err
		}
		return graphql.Float(f), nil
	case "!!str", "!!timestamp", "!!binary":
		return graphql.String(n.Value), nil
	case enumTag:
		if n.Value == "" {
			return graphql.Value{}, xerrors.Errorf("line %d: empty enum", n.Line)
		}
		return graphql.Enum(n.Value), nil
	default:
		return graphql.Value{}, xerrors.Errorf("line %d: unsupported tag %s", n.Line, tag)
	}
}
