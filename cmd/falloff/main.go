// Command falloff samples non-symmetric potentials along a stroke.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"honnef.co/go/falloff/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
