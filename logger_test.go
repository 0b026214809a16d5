package diagram

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError), "default logger must be silent")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("layout", slog.String("stem", "x"))
	test.That(t, strings.Contains(buf.String(), "stem=x"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError), "nil resets to the silent logger")
}
