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

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"zombiezen.com/go/graphql-builder/graphql"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	Method string
	Name   string
	Shape  string
	Params string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query --method <name> --shape <file> [--params <file>]",
		Short: "Build a query from a shape document",
		Long: `Build a query that calls --method and selects the fields listed in the
--shape document.

When --params names an object document with at least one field, its
non-null fields are passed as arguments.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", "", "query field to call")
	cmd.Flags().StringVar(&opts.Name, "name", "", "name of the document (defaults to the method)")
	cmd.Flags().StringVar(&opts.Shape, "shape", "", "shape document path, or - for stdin")
	cmd.Flags().StringVar(&opts.Params, "params", "", "parameters document path, or - for stdin")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

func runQuery(rootOpts *RootOptions, opts *QueryOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	var shape, params graphql.Value
	err := readInputs(rootOpts, formatter, cmd.InOrStdin(),
		inputSpec{flag: "shape", path: opts.Shape, dst: &shape},
		inputSpec{flag: "params", path: opts.Params, dst: &params})
	if err != nil {
		return err
	}

	doc, ok := graphql.CreateQuery(shape, opts.Method, params, opts.Name)
	if !ok {
		return fail(formatter, ExitFailure, ErrCodeRefused, "query needs a method and a non-null shape", nil)
	}
	rootOpts.logger().Debug("built document",
		slog.String("operation", graphql.QueryOperation.String()),
		slog.Int("length", len(doc)))
	return formatter.Success(BuildResult{
		Operation: graphql.QueryOperation.String(),
		Document:  doc,
	})
}
