// Package main is the entrypoint of fetcharr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fetcharr/internal/cfg"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
)

func main() {
	os.Exit(run())
}

// run executes the program and maps the result to an exit code: 2 for
// invalid configuration, 1 when the batch aborted early, 0 otherwise.
func run() int {
	startTime := time.Now()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cfg.Execute(ctx)

	logging.I("fetcharr finished at: %v (elapsed: %.2f seconds)",
		time.Now().Format("2006-01-02 15:04:05 MST"), time.Since(startTime).Seconds())

	switch {
	case err == nil:
		return 0
	case errors.Is(err, models.ErrInvalidSpec):
		fmt.Fprintln(os.Stderr, err)
		return 2
	case errors.Is(err, models.ErrAbortedEarly):
		fmt.Fprintln(os.Stderr, err)
		return 1
	default:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}
