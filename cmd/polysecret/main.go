package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vitalvas/polysecret/xcmd"
)

func main() {
	ctx, stop := xcmd.InterruptContext(context.Background())

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
