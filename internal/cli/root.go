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

// Package cli implements the gqlbuild command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"zombiezen.com/go/graphql-builder/internal/inputfile"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	EnumKey     string
	InputFormat string // "" | "json" | "yaml" | "cue"

	log *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the gqlbuild CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gqlbuild",
		Short: "Build GraphQL queries and mutations from plain data",
		Long: `gqlbuild converts JSON, YAML, or CUE documents into GraphQL query and
mutation strings without a schema.

Object keys keep the order they have in the input document. An input path
of "-" reads from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			if !isValidFormat(opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				opts.Format = "text"
				return fail(opts.formatter(cmd), ExitCommandError, ErrCodeInvalidFlags, msg, nil)
			}
			if _, err := inputfile.ParseFormat(opts.InputFormat); err != nil {
				return fail(opts.formatter(cmd), ExitCommandError, ErrCodeInvalidFlags, "invalid input format", err)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnumKey, "enum-key", "", "treat objects that bind this key to a string as enum values")
	cmd.PersistentFlags().StringVar(&opts.InputFormat, "input-format", "", "input format (json|yaml|cue); inferred from file extension if empty")

	cmd.AddCommand(NewMutationCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}

// logger returns the logger set up by the root command, or a logger that
// discards everything when a subcommand runs on its own.
func (opts *RootOptions) logger() *slog.Logger {
	if opts.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opts.log
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
