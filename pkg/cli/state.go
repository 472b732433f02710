package cli

import (
	"context"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

// stateCmd describes a command that changes the webspace's run state.
type stateCmd struct {
	use      string
	short    string
	message  string
	transfer func(c *webspaced.Client, ctx context.Context) error
}

func (a *app) newStateCmd(s stateCmd) *cobra.Command {
	return &cobra.Command{
		Use:   s.use,
		Short: s.short,
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			return progress(a.progressOut(cmd), s.message, " done.", func() error {
				return s.transfer(c, cmd.Context())
			})
		}),
	}
}

func (a *app) newBootCmd() *cobra.Command {
	return a.newStateCmd(stateCmd{
		use:      "boot",
		short:    "Start your webspace",
		message:  "Starting your webspace...",
		transfer: (*webspaced.Client).Boot,
	})
}

func (a *app) newShutdownCmd() *cobra.Command {
	return a.newStateCmd(stateCmd{
		use:      "shutdown",
		short:    "Stop your webspace",
		message:  "Stopping your webspace...",
		transfer: (*webspaced.Client).Shutdown,
	})
}

func (a *app) newRebootCmd() *cobra.Command {
	return a.newStateCmd(stateCmd{
		use:      "reboot",
		short:    "Restart your webspace",
		message:  "Restarting your webspace...",
		transfer: (*webspaced.Client).Reboot,
	})
}
