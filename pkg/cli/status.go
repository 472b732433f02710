package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/netsoc/webspace-cli/pkg/cli/internal/output"
	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your webspace's state and resource usage",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			state, err := c.State(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd, state, func(w io.Writer) {
				printState(w, state)
			})
		}),
	}
}

func printState(w io.Writer, s *webspaced.State) {
	status := "stopped"
	if s.Running {
		status = "running"
	}
	fmt.Fprintf(w, "Webspace status: %s\n", status)

	if len(s.Usage.Disks) > 0 {
		fmt.Fprintln(w, "Disks:")
		for _, name := range slices.Sorted(maps.Keys(s.Usage.Disks)) {
			fmt.Fprintf(w, " - %s: Used %s\n", name, output.Size(s.Usage.Disks[name]))
		}
	}
	if !s.Running {
		return
	}

	fmt.Fprintf(w, "Uptime: %s\n", output.Seconds(s.Uptime))
	fmt.Fprintf(w, "CPU time: %s\n", time.Duration(s.Usage.CPU))
	fmt.Fprintf(w, "Memory use: %s\n", output.Size(s.Usage.Memory))
	fmt.Fprintf(w, "Running processes: %d\n", s.Usage.Processes)

	names := make([]string, 0, len(s.NetworkInterfaces))
	for name := range s.NetworkInterfaces {
		if name != "lo" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	slices.Sort(names)

	fmt.Fprintln(w, "Network interfaces:")
	for _, name := range names {
		iface := s.NetworkInterfaces[name]
		fmt.Fprintf(w, " - %s (%s):\n", name, iface.MAC)
		fmt.Fprintf(w, "   Sent/received: %s/%s\n",
			output.Size(iface.Counters.BytesSent), output.Size(iface.Counters.BytesReceived))
		for _, addr := range iface.Addresses {
			version := "4"
			if addr.IsIPv6() {
				version = "6"
			}
			fmt.Fprintf(w, "   IPv%s address: %s/%s\n", version, addr.Address, addr.Netmask)
		}
	}
}
