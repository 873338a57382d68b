// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command caltime does calendar arithmetic on the command line.
//
// Usage:
//
//	caltime [--format text|json] [--config file] <command> [args]
//
// Run "caltime help" for the list of commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"gonih.org/datetime/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands report their own errors; only cobra's are left.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "caltime:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
