package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

// parsePort parses a port number argument.
func parsePort(s string) (uint16, error) {
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, webspaced.Errorf("%q is not a valid port number", s)
	}
	return uint16(p), nil
}

// portForward is the JSON form of one port forward.
type portForward struct {
	External uint16 `json:"external"`
	Internal uint16 `json:"internal"`
}

func (a *app) newPortsCmd() *cobra.Command {
	show := &cobra.Command{
		Use:   "show",
		Short: "List your webspace's port forwards",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			ports, err := c.Ports(cmd.Context())
			if err != nil {
				return err
			}

			forwards := make([]portForward, 0, len(ports))
			for _, ext := range slices.Sorted(maps.Keys(ports)) {
				forwards = append(forwards, portForward{External: ext, Internal: ports[ext]})
			}
			return a.printResult(cmd, forwards, func(w io.Writer) {
				fmt.Fprintln(w, "Webspace ports:")
				for _, f := range forwards {
					fmt.Fprintf(w, " - %d -> %d\n", f.External, f.Internal)
				}
			})
		}),
	}

	var externalPort uint16
	add := &cobra.Command{
		Use:   "add <internal port>",
		Short: "Forward an external port to your webspace",
		Long: `Forward an external port to a port in your webspace.

Without --external-port the daemon picks a free external port.`,
		Example: `  # Let the daemon pick the external port
  webspace ports add 22

  # Forward external port 2222 to port 22
  webspace ports add 22 -p 2222`,
		Args: cobra.ExactArgs(1),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			internal, err := parsePort(args[0])
			if err != nil {
				return err
			}
			external, err := c.AddPort(cmd.Context(), externalPort, internal)
			if err != nil {
				return err
			}
			return a.printResult(cmd, portForward{External: external, Internal: internal}, func(w io.Writer) {
				fmt.Fprintf(w, "Port %d in your webspace is now accessible externally via port %d\n", internal, external)
			})
		}),
	}
	add.Flags().Uint16VarP(&externalPort, "external-port", "p", 0, "External port to forward (0 lets the daemon choose)")

	remove := &cobra.Command{
		Use:     "remove <external port>",
		Aliases: []string{"rm"},
		Short:   "Remove a port forward",
		Args:    cobra.ExactArgs(1),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			external, err := parsePort(args[0])
			if err != nil {
				return err
			}
			return c.RemovePort(cmd.Context(), external)
		}),
	}

	cmd := &cobra.Command{
		Use:   "ports",
		Short: "Manage your webspace's port forwards",
		Args:  cobra.NoArgs,
		Run:   show.Run,
	}
	cmd.AddCommand(show, add, remove)
	return cmd
}
