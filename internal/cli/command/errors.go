package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/telemetry/logger"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1 // bad arguments or input
	ExitStorage = 2 // the settings directory could not be read or written
)

// HandleError reports a command error on stderr. It is the app's
// ExitErrHandler, so it never exits; main turns the error returned by
// Run into a status with ExitCode.
func HandleError(c *cli.Context, err error) {
	if err == nil {
		return
	}

	var w io.Writer = os.Stderr
	ctx := context.Background()
	if c != nil {
		if c.App != nil && c.App.ErrWriter != nil {
			w = c.App.ErrWriter
		}
		if c.Context != nil {
			ctx = c.Context
		}
	}

	if code := domain.GetErrorCode(err); code != "" {
		logger.L(ctx).Debug("command failed", "code", code, "error", err)
	} else {
		logger.L(ctx).Debug("command failed", "error", err)
	}

	fmt.Fprintf(w, "%s %v\n", paint(w, color.FgRed, "error:"), err)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	if errors.Is(err, domain.ErrStorage) || errors.Is(err, domain.ErrDirNotFound) {
		return ExitStorage
	}
	return ExitUsage
}

// paint colours s when w is a terminal and NO_COLOR is unset.
func paint(w io.Writer, attr color.Attribute, s string) string {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return s
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return s
	}

	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
