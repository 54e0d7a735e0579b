package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"progviz/internal/watch"
)

func TestWatcher_RebuildsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	sequence := filepath.Join(dir, "sequence.xlsx")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(sequence, []byte("v1"), 0o644))

	w, err := watch.New([]string{sequence, ""}, 50*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	calls := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	select {
	case <-calls:
		t.Fatal("unrelated file triggered a rebuild")
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(sequence, []byte("v2"), 0o644))
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after the workbook changed")
	}

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, w.Close())
}

func TestNew_NoFiles(t *testing.T) {
	_, err := watch.New([]string{""}, 0, nil)
	require.Error(t, err)
}
