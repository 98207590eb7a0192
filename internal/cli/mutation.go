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

// MutationOptions holds flags for the mutation command.
type MutationOptions struct {
	Method string
	Name   string
	Data   string
	Shape  string
}

// NewMutationCommand creates the mutation command.
func NewMutationCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MutationOptions{}

	cmd := &cobra.Command{
		Use:   "mutation --method <name> --data <file> [--shape <file>]",
		Short: "Build a mutation from a data document",
		Long: `Build a mutation that calls --method with the fields of the --data
document as arguments. Null fields are left out of the arguments.

The --shape document lists the fields to select from the result. Without
it, the selection mirrors the data document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Errors are reported by the output formatter
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", "", "mutation field to call")
	cmd.Flags().StringVar(&opts.Name, "name", "", "name of the document (defaults to the method)")
	cmd.Flags().StringVar(&opts.Data, "data", "", "data document path, or - for stdin")
	cmd.Flags().StringVar(&opts.Shape, "shape", "", "shape document path, or - for stdin")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runMutation(rootOpts *RootOptions, opts *MutationOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	var data, shape graphql.Value
	err := readInputs(rootOpts, formatter, cmd.InOrStdin(),
		inputSpec{flag: "data", path: opts.Data, dst: &data},
		inputSpec{flag: "shape", path: opts.Shape, dst: &shape})
	if err != nil {
		return err
	}

	doc, ok := graphql.CreateMutation(data, shape, opts.Method, opts.Name)
	if !ok {
		return fail(formatter, ExitFailure, ErrCodeRefused, "mutation needs a method and non-null data", nil)
	}
	rootOpts.logger().Debug("built document",
		slog.String("operation", graphql.MutationOperation.String()),
		slog.Int("length", len(doc)))
	return formatter.Success(BuildResult{
		Operation: graphql.MutationOperation.String(),
		Document:  doc,
	})
}
