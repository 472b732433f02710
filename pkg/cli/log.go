package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

// consoleLogOutput is the JSON form of the console log.
type consoleLogOutput struct {
	Log string `json:"log"`
}

func (a *app) newLogCmd() *cobra.Command {
	var clearLog bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show your webspace's console log",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			if clearLog {
				return progress(a.progressOut(cmd), "Clearing console log...", " done.", func() error {
					return c.ClearConsoleLog(cmd.Context())
				})
			}

			text, err := c.ConsoleLog(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd, consoleLogOutput{Log: text}, func(w io.Writer) {
				fmt.Fprint(w, text)
				if text != "" && !strings.HasSuffix(text, "\n") {
					fmt.Fprintln(w)
				}
			})
		}),
	}

	cmd.Flags().BoolVar(&clearLog, "clear", false, "Clear the console log instead of printing it")

	return cmd
}
