package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/beer-inventory-client/internal/logger"
)

// closeLogger flushes the package logger; tests swap it to observe the flush.
var closeLogger = logger.Close

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "beerctl failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return execute(ctx, os.Args[1:], os.Stdout)
}

// execute runs one CLI invocation and flushes logs whether or not it failed.
func execute(ctx context.Context, args []string, out io.Writer) error {
	defer func() { _ = closeLogger() }()

	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
