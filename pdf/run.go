// Package pdf holds the plumbing shared by the pdfinfo, pdftocairo and
// pdftotext wrappers: spawning a tool with the document bytes piped to
// stdin, and turning its stderr into a closed set of errors.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Run invokes a poppler tool, feeds it data on stdin and returns its
// stdout. A non-zero exit is classified by matching stderr; failures to
// start the process or to feed it input are returned as wrapped I/O
// errors instead.
func Run(ctx context.Context, tool string, data []byte, hasPassword bool, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, classifyExit(tool, exitErr.ExitCode(), stderr.String(), hasPassword)
	}

	return nil, fmt.Errorf("run %v: %w", tool, err)
}
