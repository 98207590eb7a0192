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
	"errors"
	"io"
	"log/slog"

	"zombiezen.com/go/graphql-builder/graphql"
	"zombiezen.com/go/graphql-builder/internal/inputfile"
)

// inputSpec names one input document of a command.
type inputSpec struct {
	flag string // flag the path came from, used in messages
	path string
	dst  *graphql.Value
}

// readInputs decodes each input with a non-empty path. At most one input may
// read from standard input.
func readInputs(opts *RootOptions, f *OutputFormatter, stdin io.Reader, inputs ...inputSpec) error {
	stdinUsers := 0
	for _, in := range inputs {
		if in.path == "-" {
			stdinUsers++
		}
	}
	if stdinUsers > 1 {
		return fail(f, ExitCommandError, ErrCodeInvalidFlags, "only one input may be read from stdin", nil)
	}

	format, err := inputfile.ParseFormat(opts.InputFormat)
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeInvalidFlags, "invalid input format", err)
	}
	decodeOpts := inputfile.Options{Format: format, EnumKey: opts.EnumKey}
	log := opts.logger()
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		v, err := inputfile.ReadFile(in.path, stdin, decodeOpts)
		if err != nil {
			var readErr *inputfile.ReadError
			if errors.As(err, &readErr) {
				return fail(f, ExitCommandError, ErrCodeReadInput, "cannot read --"+in.flag+" "+in.path, readErr.Err)
			}
			return fail(f, ExitCommandError, ErrCodeDecodeInput, "cannot decode --"+in.flag+" "+in.path, err)
		}
		usedFormat := format
		if usedFormat == "" {
			usedFormat = inputfile.FormatFor(in.path)
		}
		log.Debug("decoded input",
			slog.String("flag", in.flag),
			slog.String("path", in.path),
			slog.String("format", string(usedFormat)),
			slog.String("kind", v.Kind().String()))
		*in.dst = v
	}
	return nil
}
