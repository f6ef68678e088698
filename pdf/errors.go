package pdf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotPDF is returned when a tool rejects the input bytes as not
	// being a PDF file.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrEncrypted is returned when the document requires a password
	// and none was supplied.
	ErrEncrypted = errors.New("PDF is encrypted and no password was supplied")

	// ErrWrongPassword is returned when the supplied password does not
	// unlock the document.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrPermission is returned when the document's permission flags
	// forbid the requested operation.
	ErrPermission = errors.New("operation not permitted by the PDF")
)

// pdftocairo exits with 3 when the document forbids the operation.
const permissionExitCode = 3

// ToolError is a failure reported by the tool itself that matches none
// of the known stderr patterns. It carries the raw stderr text.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%v exited with status %d: %v", e.Tool, e.ExitCode, strings.TrimSpace(e.Stderr))
}

// PageError reports a request for a page outside the document.
type PageError struct {
	// Page is the requested page number.
	Page int
	// Pages is the number of pages in the document.
	Pages int
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d is outside the available pages 1..%d", e.Page, e.Pages)
}

// classifyExit maps the stderr of a failed tool invocation to one of
// the exported errors. hasPassword disambiguates the two meanings of
// poppler's "Incorrect password" message.
func classifyExit(tool string, exitCode int, stderr string, hasPassword bool) error {
	if strings.Contains(stderr, "May not be a PDF file") {
		return ErrNotPDF
	}

	if strings.Contains(stderr, "Incorrect password") {
		if hasPassword {
			return ErrWrongPassword
		}

		return ErrEncrypted
	}

	if exitCode == permissionExitCode {
		return fmt.Errorf("%w: %v", ErrPermission, strings.TrimSpace(stderr))
	}

	return &ToolError{Tool: tool, ExitCode: exitCode, Stderr: stderr}
}
