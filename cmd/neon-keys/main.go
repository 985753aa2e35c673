package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/setavenger/neon-desktop/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], cli.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})
	stop()
	os.Exit(code)
}
