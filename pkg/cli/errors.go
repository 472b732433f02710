package cli

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

// handlerFunc is the body of a command that talks to the daemon.
type handlerFunc func(cmd *cobra.Command, c *webspaced.Client, args []string) error

// run wraps a command body in the error boundary: any failure is printed
// as "Error: <message>" on stderr and the command itself still succeeds.
// Output already written before the failure is left as is.
func (a *app) run(fn handlerFunc) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, a.client(), args); err != nil {
			a.logger.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			printError(cmd.ErrOrStderr(), err)
		}
	}
}

// printError writes err for the user, with a hint when the daemon could
// not be reached at all.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if isConnectionError(err) {
		fmt.Fprintln(w, "Is webspaced running? Check the socket path with -c/--socket.")
	}
}

func isConnectionError(err error) bool {
	var wsErr *webspaced.Error
	if !errors.As(err, &wsErr) || wsErr.StatusCode != 0 {
		return false
	}
	return errors.Is(err, syscall.ENOENT) || errors.Is(err, syscall.ECONNREFUSED)
}
