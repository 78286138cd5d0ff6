package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/vedantwpatil/input-tools/internal/pointer"
)

type stubController struct {
	moves  []pointer.Position
	glides []time.Duration
	err    error
	onMove func(n int)
}

func (c *stubController) ScreenSize() (pointer.Bounds, error) {
	return pointer.Bounds{Width: 800, Height: 600}, nil
}

func (c *stubController) Move(_ context.Context, x, y int, d time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.moves = append(c.moves, pointer.Position{X: x, Y: y})
	c.glides = append(c.glides, d)
	if c.onMove != nil {
		c.onMove(len(c.moves))
	}
	return nil
}

func stubEnvironment(t *testing.T, c *stubController) {
	t.Helper()

	origController, origCheck, origHotkey := newController, checkDisplay, listenHotkey
	newController = func() pointer.Controller { return c }
	checkDisplay = func() error { return nil }
	listenHotkey = func(ctx context.Context, _ []string, _ func(), _ *slog.Logger) { <-ctx.Done() }
	t.Cleanup(func() {
		newController, checkDisplay, listenHotkey = origController, origCheck, origHotkey
	})
}

func TestRunInterruptedBeforeStart(t *testing.T) {
	stubEnvironment(t, &stubController{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	code := run(ctx, []string{"-log-level", "error"}, &stdout, io.Discard)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout.String() != interruptNotice+"\n" {
		t.Fatalf("expected a single notice line, got %q", stdout.String())
	}
}

func TestRunInterruptedMidSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &stubController{onMove: func(n int) {
		if n == 2 {
			cancel()
		}
	}}
	stubEnvironment(t, c)

	var stdout bytes.Buffer
	code := run(ctx, []string{"-s", "0.01", "-r", "10,20", "-m", "linear", "-hotkey", "-log-level", "error"}, &stdout, io.Discard)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout.String() != interruptNotice+"\n" {
		t.Fatalf("expected a single notice line, got %q", stdout.String())
	}
	if len(c.moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(c.moves))
	}
	for i, p := range c.moves {
		if p != (pointer.Position{X: 10, Y: 20}) {
			t.Fatalf("move %d went to %+v", i, p)
		}
		if c.glides[i] != 0 {
			t.Fatalf("linear motion should not glide, got %v", c.glides[i])
		}
	}
}

func TestRunHumanMotionGlidesOverSpeed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &stubController{onMove: func(int) { cancel() }}
	stubEnvironment(t, c)

	code := run(ctx, []string{"--speed", "1.5", "--log-level", "error"}, io.Discard, io.Discard)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if len(c.glides) != 1 || c.glides[0] != 1500*time.Millisecond {
		t.Fatalf("expected one 1.5s glide, got %v", c.glides)
	}
}

func TestRunPointerFailure(t *testing.T) {
	stubEnvironment(t, &stubController{err: errors.New("cannot open display")})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-s", "0"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
	if !bytes.Contains(stderr.Bytes(), []byte("cannot open display")) {
		t.Fatalf("expected error to be logged, got %q", stderr.String())
	}
}

func TestRunMissingDisplay(t *testing.T) {
	c := &stubController{}
	stubEnvironment(t, c)
	checkDisplay = func() error { return pointer.ErrNoDisplay }

	code := run(context.Background(), nil, io.Discard, io.Discard)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if len(c.moves) != 0 {
		t.Fatal("no moves expected without a display")
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	stubEnvironment(t, &stubController{})

	tests := [][]string{
		{"-m", "wobbly"},
		{"-r", "left"},
		{"-d", "0"},
		{"-s", "-1"},
		{"-s", "NaN"},
		{"-s", "1e12"},
		{"-d", "999999999999"},
		{"-r", ""},
		{"-log-format", "xml"},
		{"-nope"},
	}
	for _, args := range tests {
		if code := run(context.Background(), args, io.Discard, io.Discard); code != 2 {
			t.Fatalf("args %v: expected exit 2, got %d", args, code)
		}
	}
}

func TestRunHelp(t *testing.T) {
	stubEnvironment(t, &stubController{})

	var stderr bytes.Buffer
	if code := run(context.Background(), []string{"-h"}, io.Discard, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("-duration")) {
		t.Fatalf("expected usage text, got %q", stderr.String())
	}
}
