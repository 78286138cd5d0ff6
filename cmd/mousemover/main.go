package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vedantwpatil/input-tools/internal/config"
	"github.com/vedantwpatil/input-tools/internal/logging"
	"github.com/vedantwpatil/input-tools/internal/movement"
	"github.com/vedantwpatil/input-tools/internal/pointer"
)

const interruptNotice = "Mouse movement interrupted by user. Exiting."

// Swapped in tests so nothing touches the real cursor.
var (
	newController = func() pointer.Controller { return pointer.NewRobot() }
	checkDisplay  = pointer.CheckDisplay
	listenHotkey  = pointer.ListenStopHotkey
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("mousemover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mousemover [flags]")
		fmt.Fprintln(stderr, "Control mouse movement in random directions.")
		fs.PrintDefaults()
	}

	m := &cfg.Movement
	fs.IntVar(&m.DurationMinutes, "duration", m.DurationMinutes, "Duration of mouse movement in minutes")
	fs.IntVar(&m.DurationMinutes, "d", m.DurationMinutes, "Shorthand for -duration")
	fs.Float64Var(&m.SpeedSeconds, "speed", m.SpeedSeconds, "Seconds per move")
	fs.Float64Var(&m.SpeedSeconds, "s", m.SpeedSeconds, "Shorthand for -speed")
	fs.StringVar(&m.Range, "range", m.Range, "Range of motion: full, x,y or display:N")
	fs.StringVar(&m.Range, "r", m.Range, "Shorthand for -range")
	fs.StringVar(&m.Motion, "motion", m.Motion, "Type of motion: human, linear or jittery")
	fs.StringVar(&m.Motion, "m", m.Motion, "Shorthand for -motion")
	fs.Int64Var(&m.Seed, "seed", m.Seed, "Random seed (0 picks one from the clock)")
	fs.BoolVar(&m.Progress, "progress", m.Progress, "Draw a progress bar on stderr")
	fs.BoolVar(&m.Hotkey, "hotkey", m.Hotkey, "Stop when ctrl+shift+q is pressed")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format (console, json)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 2
	}
	rng, err := movement.ParseRange(m.Range)
	if err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 2
	}
	motion, err := movement.ParseMotion(m.Motion)
	if err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 2
	}

	logger, err := logging.New(logging.Options{Tool: "mousemover", Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 2
	}

	if err := checkDisplay(); err != nil {
		logger.Error("cannot control the mouse", slog.Any("error", err))
		return 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if m.Hotkey {
		logger.Info("stop hotkey enabled", slog.String("keys", strings.Join(m.StopKeys, "+")))
		go listenHotkey(ctx, m.StopKeys, cancel, logger)
	}

	driver := movement.NewDriver(newController(), movement.NewRand(m.Seed), logger)
	if m.Progress {
		driver.SetReporter(movement.NewProgressBar(stderr, "Moving mouse"))
	}

	err = driver.Run(ctx, movement.Options{
		Duration: cfg.Duration(),
		Speed:    cfg.Speed(),
		Range:    rng,
		Motion:   motion,
	})
	switch {
	case errors.Is(err, movement.ErrInterrupted):
		if m.Progress {
			fmt.Fprintln(stderr)
		}
		fmt.Fprintln(stdout, interruptNotice)
		return 0
	case err != nil:
		logger.Error("mouse movement failed", slog.Any("error", err))
		return 1
	}
	return 0
}
