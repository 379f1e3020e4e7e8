package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context bounded by maxWaitDuration and a logger that is silent unless -v is set.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if testing.Verbose() {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// WriteFile - writes content to a file in a per-test temporary directory and returns its path.
func (that *Suite) WriteFile(name, content string) string {
	that.Helper()

	path := filepath.Join(that.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		that.Fatalf("could not write %s: %v", name, err)
	}

	return path
}
