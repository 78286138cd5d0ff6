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
	"syscall"

	"github.com/vedantwpatil/input-tools/internal/config"
	"github.com/vedantwpatil/input-tools/internal/devices"
	"github.com/vedantwpatil/input-tools/internal/logging"
)

var newRunner = func(tool string) (devices.Runner, error) {
	return devices.LookupTool(tool)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.NewConfig()

	var (
		list       bool
		short      bool
		disable    string
		disableAll bool
		enable     string
	)

	fs := flag.NewFlagSet("xinputctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: xinputctl [flags]")
		fmt.Fprintln(stdout, "Manage input devices using xinput.")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Disabling every device can leave the session without a keyboard or mouse.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}

	fs.BoolVar(&list, "list", false, "List all input devices")
	fs.BoolVar(&list, "l", false, "Shorthand for -list")
	fs.BoolVar(&short, "short", false, "With -list, print the short device table")
	fs.StringVar(&disable, "disable", "", "Disable devices by ID, separated by commas")
	fs.StringVar(&disable, "d", "", "Shorthand for -disable")
	fs.BoolVar(&disableAll, "disable-all", false, "Disable all devices")
	fs.BoolVar(&disableAll, "da", false, "Shorthand for -disable-all")
	fs.StringVar(&enable, "enable", "", "Enable devices by ID, separated by commas")
	fs.StringVar(&enable, "e", "", "Shorthand for -enable")
	fs.StringVar(&cfg.Devices.Tool, "tool", cfg.Devices.Tool, "Device tool to invoke")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format (console, json)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if !list && disable == "" && !disableAll && enable == "" {
		fs.Usage()
		return 0
	}

	logger, err := logging.New(logging.Options{Tool: "xinputctl", Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 2
	}

	runner, err := newRunner(cfg.Devices.Tool)
	if err != nil {
		logger.Error("cannot manage devices", slog.Any("error", err))
		return 1
	}
	m := devices.NewManager(runner, logger)

	// Only the first action given is performed.
	switch {
	case list:
		var out string
		if short {
			out, err = m.ListShort(ctx)
		} else {
			out, err = m.List(ctx)
		}
		if err != nil {
			logger.Error("listing devices failed", slog.Any("error", err))
			return 1
		}
		fmt.Fprintln(stdout, out)
	case disable != "":
		devices.WriteResults(stdout, m.Disable(ctx, disable))
	case disableAll:
		results, err := m.DisableAll(ctx)
		if err != nil {
			logger.Error("listing devices failed", slog.Any("error", err))
			return 1
		}
		devices.WriteResults(stdout, results)
	case enable != "":
		devices.WriteResults(stdout, m.Enable(ctx, enable))
	}
	return 0
}
