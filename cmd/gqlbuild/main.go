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

// gqlbuild builds GraphQL query and mutation strings from JSON, YAML, or CUE
// documents.
package main

import (
	"errors"
	"fmt"
	"os"

	"zombiezen.com/go/graphql-builder/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Flag and argument errors from cobra have not been reported yet.
		fmt.Fprintln(os.Stderr, "gqlbuild:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
