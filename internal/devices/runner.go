package devices

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

var ErrToolNotFound = errors.New("device tool not found")

// Runner executes the device tool with args and hands back what it printed.
type Runner interface {
	Run(ctx context.Context, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs a real binary.
type ExecRunner struct {
	Tool string
}

var lookPath = exec.LookPath

// LookupTool resolves name on PATH.
func LookupTool(name string) (*ExecRunner, error) {
	path, err := lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not installed or not on PATH: %v", ErrToolNotFound, name, err)
	}
	return &ExecRunner{Tool: path}, nil
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, r.Tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
