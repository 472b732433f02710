package cli

import (
	"fmt"
	"io"

	"github.com/netsoc/webspace-cli/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// printResult outputs a command result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to stdout. textFn is called only in text mode.
func (a *app) printResult(cmd *cobra.Command, data any, textFn func(w io.Writer)) error {
	if a.cfg.JSON {
		return output.JSON(cmd.OutOrStdout(), data)
	}
	textFn(cmd.OutOrStdout())
	return nil
}

// progressOut is where progress messages go: stdout normally, stderr in
// JSON mode so that stdout stays machine-readable.
func (a *app) progressOut(cmd *cobra.Command) io.Writer {
	if a.cfg.JSON {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// progress prints message, runs fn, and ends the line with done on success
// or a bare newline on failure.
func progress(w io.Writer, message, done string, fn func() error) error {
	fmt.Fprint(w, message)
	if err := fn(); err != nil {
		fmt.Fprintln(w)
		return err
	}
	fmt.Fprintln(w, done)
	return nil
}
