package xcmd

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptContext(t *testing.T) {
	t.Run("canceled by signal", func(t *testing.T) {
		ctx, stop := InterruptContext(context.Background(), syscall.SIGUSR1)
		defer stop()

		proc, err := os.FindProcess(os.Getpid())
		require.NoError(t, err)
		require.NoError(t, proc.Signal(syscall.SIGUSR1))

		select {
		case <-ctx.Done():
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for signal")
		}
	})

	t.Run("parent cancellation", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := InterruptContext(parent)
		defer stop()

		cancel()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context not canceled")
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		ctx, stop := InterruptContext(context.Background())
		stop()
		assert.Error(t, ctx.Err())
	})
}
