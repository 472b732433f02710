package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

// configOptions are the webspace options "config set" accepts, each with
// the conversion applied to its value before it is sent.
var configOptions = map[string]func(string) (any, error){
	"startupDelay": parseFloatOption,
	"httpPort":     parsePortOption,
	"httpsPort":    parsePortOption,
}

func parseFloatOption(s string) (any, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func parsePortOption(s string) (any, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid port number", s)
	}
	return uint16(v), nil
}

func (a *app) newConfigCmd() *cobra.Command {
	show := a.newConfigShowCmd()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change your webspace's configuration",
		Args:  cobra.NoArgs,
		Run:   show.Run,
	}
	cmd.AddCommand(show, a.newConfigSetCmd())
	return cmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your webspace's configuration",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			conf, err := c.Config(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd, conf, func(w io.Writer) {
				fmt.Fprintln(w, "Webspace configuration:")
				fmt.Fprintf(w, "startupDelay: %g\n", conf.StartupDelay)
				fmt.Fprintf(w, "httpPort: %d\n", conf.HTTPPort)
				fmt.Fprintf(w, "httpsPort: %d\n", conf.HTTPSPort)
			})
		}),
	}
}

func (a *app) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <option> <value>",
		Short: "Set a webspace configuration option",
		Long: `Set a webspace configuration option.

Options:
  startupDelay  Seconds to wait after boot before forwarding requests
  httpPort      Port HTTP requests are forwarded to
  httpsPort     Port HTTPS (SNI) connections are forwarded to`,
		Example: `  webspace config set startupDelay 2.5
  webspace config set httpPort 8080`,
		ValidArgs: []string{"startupDelay", "httpPort", "httpsPort"},
		Args:      cobra.ExactArgs(2),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			option, raw := args[0], args[1]
			parse, ok := configOptions[option]
			if !ok {
				return webspaced.Errorf("unknown option %q (must be one of startupDelay, httpPort, httpsPort)", option)
			}
			value, err := parse(raw)
			if err != nil {
				return webspaced.Errorf("invalid value for %s: %v", option, err)
			}

			return c.UpdateConfig(cmd.Context(), map[string]any{option: value})
		}),
	}
}
