package cli

import (
	"fmt"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

func (a *app) newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your webspace",
		Long: `Delete your webspace and everything in it.

You will be asked to confirm unless --yes is given.`,
		Args: cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			if !yes {
				ok, err := a.prompter.Confirm("Are you sure you want to delete your webspace?", false)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(a.progressOut(cmd), "Aborted.")
					return nil
				}
			}

			return progress(a.progressOut(cmd), "Deleting your webspace...", " done.", func() error {
				return c.Delete(cmd.Context())
			})
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Don't ask for confirmation")

	return cmd
}
