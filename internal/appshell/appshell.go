// Package appshell wires a RunContext-style entry point to the process:
// signals, argv and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is returned when the run was cancelled by a signal.
const ExitInterrupted = 130

// RunFunc is a command body: it reads argv, writes to stdout and stderr and
// returns the process exit code. It should stop early once ctx is done.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Exec runs fn with argv, substituting "-h" for an empty argument list. A
// run that reports success after ctx was cancelled exits ExitInterrupted.
func Exec(ctx context.Context, fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := fn(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		return ExitInterrupted
	}
	return code
}

// Main runs fn for the current process with SIGINT and SIGTERM cancelling its
// context, then exits with its code. It does not return.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, fn, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
