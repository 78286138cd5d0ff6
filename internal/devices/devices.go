package devices

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Action string

const (
	ActionDisable Action = "disable"
	ActionEnable  Action = "enable"
)

// Result is the outcome of one enable or disable call.
type Result struct {
	ID     string
	Action Action
	Err    error
}

// Manager lists and toggles input devices through xinput.
type Manager struct {
	runner Runner
	logger *slog.Logger
}

func NewManager(runner Runner, logger *slog.Logger) *Manager {
	return &Manager{runner: runner, logger: logger}
}

// List returns the raw device table.
func (m *Manager) List(ctx context.Context) (string, error) {
	return m.list(ctx, "list")
}

// ListShort returns the device table without the property details.
func (m *Manager) ListShort(ctx context.Context) (string, error) {
	return m.list(ctx, "list", "--short")
}

func (m *Manager) list(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := m.runner.Run(ctx, args...)
	if err != nil {
		return stdout, fmt.Errorf("xinput %s: %w", strings.Join(args, " "), err)
	}
	if stderr != "" {
		m.logger.Warn("xinput list wrote to stderr", slog.String("stderr", strings.TrimSpace(stderr)))
	}
	return stdout, nil
}

func (m *Manager) Disable(ctx context.Context, ids string) []Result {
	return m.toggle(ctx, ActionDisable, SplitIDs(ids))
}

func (m *Manager) Enable(ctx context.Context, ids string) []Result {
	return m.toggle(ctx, ActionEnable, SplitIDs(ids))
}

// DisableAll disables every device found in the listing, one call per device.
func (m *Manager) DisableAll(ctx context.Context) ([]Result, error) {
	out, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := ParseIDs(out)
	m.logger.Info("disabling all devices", slog.Int("count", len(ids)))
	return m.toggle(ctx, ActionDisable, ids), nil
}

// toggle keeps going after a failure; every id gets its own result.
func (m *Manager) toggle(ctx context.Context, action Action, ids []string) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		_, stderr, err := m.runner.Run(ctx, string(action), id)
		res := Result{ID: id, Action: action}
		switch {
		case stderr != "":
			res.Err = errors.New(strings.TrimSpace(stderr))
		case err != nil:
			res.Err = err
		}
		if res.Err != nil {
			m.logger.Debug("xinput call failed", slog.String("action", string(action)), slog.String("id", id), slog.Any("error", res.Err))
		}
		results = append(results, res)
	}
	return results
}

// SplitIDs splits a comma separated id list, dropping blanks.
func SplitIDs(ids string) []string {
	var out []string
	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// ParseIDs pulls the value after "id=" out of every line of an xinput listing.
// Example line: "⎜   ↳ Logitech USB Receiver    id=9	[slave  pointer  (2)]"
func ParseIDs(listing string) []string {
	var ids []string
	scanner := bufio.NewScanner(strings.NewReader(listing))
	for scanner.Scan() {
		_, rest, ok := strings.Cut(scanner.Text(), "id=")
		if !ok {
			continue
		}
		if fields := strings.Fields(rest); len(fields) > 0 {
			ids = append(ids, fields[0])
		}
	}
	return ids
}

// WriteResults prints one line per result.
func WriteResults(w io.Writer, results []Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "Error %s device ID %s: %v\n", r.Action.gerund(), r.ID, r.Err)
			continue
		}
		fmt.Fprintf(w, "Device ID %s has been %sd.\n", r.ID, r.Action)
	}
}

func (a Action) gerund() string {
	return strings.TrimSuffix(string(a), "e") + "ing"
}
