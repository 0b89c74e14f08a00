// Package main provides the renban command: batch-rename the files of a
// directory by sequence, date, size, embedded author or AI, with a preview
// and confirmation before anything is renamed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], defaultDependencies())
	stop()
	os.Exit(code)
}
