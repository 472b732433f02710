package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/netsoc/webspace-cli/pkg/cli/internal/output"
	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

func (a *app) newImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List available images",
		Args:  cobra.NoArgs,
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, _ []string) error {
			images, err := c.Images(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd, images, func(w io.Writer) {
				printImages(w, images)
			})
		}),
	}
}

func printImages(w io.Writer, images []webspaced.Image) {
	fmt.Fprintln(w, "Available images:")
	for i := range images {
		img := &images[i]
		fmt.Fprintf(w, " - Fingerprint: %s\n", img.Fingerprint)
		if aliases := img.AliasNames(); len(aliases) > 0 {
			fmt.Fprintf(w, "   Aliases: %s\n", strings.Join(aliases, ", "))
		}
		if desc, ok := img.Description(); ok {
			fmt.Fprintf(w, "   Description: %s\n", desc)
		}
		fmt.Fprintf(w, "   Size: %s\n", output.Size(img.Size))
	}
}
