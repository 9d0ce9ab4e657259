package xcmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a copy of ctx that is canceled when one of signals
// arrives, SIGINT and SIGTERM by default. Call stop to release the handler.
func InterruptContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	return signal.NotifyContext(ctx, signals...)
}
