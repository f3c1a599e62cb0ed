package halfedge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// octahedronCloud is the unit octahedron plus its center, whose hull has
// eight faces.
var octahedronCloud = []r3.Vec{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}, {},
}

// captureLogs installs a text logger at level for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled for %v", level)
		}
	}
}

func TestConvexHullLogsAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	if _, err := FromPoints(octahedronCloud); err != nil {
		t.Fatalf("FromPoints() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"halfedge: convex hull", "points=7", "vertices=6", "faces=8"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestConvexHullQuietAboveDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	if _, err := FromPoints(octahedronCloud); err != nil {
		t.Fatalf("FromPoints() = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output at warn level: %s", buf.String())
	}
}

func TestSetLoggerWhileBuilding(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			if _, err := FromPoints(octahedronCloud); err != nil {
				t.Errorf("FromPoints() = %v", err)
			}
		})
		wg.Go(func() {
			SetLogger(slog.New(slog.DiscardHandler))
			SetLogger(nil)
		})
	}
	wg.Wait()
}
