// SPDX-License-Identifier: MIT

// Command kosmos-laws lists and runs the law suites of the built-in
// algebraic instances.
//
//	kosmos-laws list [--full] [--suite s]...
//	kosmos-laws run [--config file] [--full] [--suite s]... [--checks n]
//
// run prints a summary and exits with status 1 when a law fails.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
