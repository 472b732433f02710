package cli

import (
	"fmt"
	"io"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

func (a *app) newDomainsCmd() *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "List your webspace's domains",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			domains, err := c.Domains(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd, domains, func(w io.Writer) {
				fmt.Fprintln(w, "Webspace domains:")
				for _, d := range domains {
					fmt.Fprintf(w, " - %s\n", d)
				}
			})
		}),
	}

	add := &cobra.Command{
		Use:   "add <domain>",
		Short: "Add a custom domain",
		Long: `Add a custom domain to your webspace.

The daemon verifies ownership of the domain before adding it, which may take
a moment.`,
		Args: cobra.ExactArgs(1),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			return progress(a.progressOut(cmd), "Verifying domain...", " done.", func() error {
				return c.AddDomain(cmd.Context(), args[0])
			})
		}),
	}

	remove := &cobra.Command{
		Use:     "remove <domain>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom domain",
		Args:    cobra.ExactArgs(1),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			return c.RemoveDomain(cmd.Context(), args[0])
		}),
	}

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Manage your webspace's domains",
		Args:  cobra.NoArgs,
		Run:   show.Run,
	}
	cmd.AddCommand(show, add, remove)
	return cmd
}
