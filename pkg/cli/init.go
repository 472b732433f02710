package cli

import (
	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	var (
		noPassword bool
		sshKey     string
	)

	cmd := &cobra.Command{
		Use:   "init <image>",
		Short: "Create your webspace",
		Long: `Create your webspace from an image.

The image may be given by alias or fingerprint (see "webspace images").
Unless --no-password is given you will be asked for a root password.`,
		Example: `  # Create a webspace from the ubuntu/focal image
  webspace init ubuntu/focal

  # Only allow SSH key login
  webspace init ubuntu/focal --no-password -k "$(cat ~/.ssh/id_ed25519.pub)"`,
		Args: cobra.ExactArgs(1),
		Run: a.run(func(cmd *cobra.Command, c *webspaced.Client, args []string) error {
			ctx := cmd.Context()

			image, err := c.ResolveImage(ctx, args[0])
			if err != nil {
				return err
			}

			req := &webspaced.InitRequest{
				Image:  image.Fingerprint,
				SSHKey: sshKey,
			}
			if !noPassword {
				password, err := a.askNewPassword()
				if err != nil {
					return err
				}
				req.Password = &password
			}

			return progress(a.progressOut(cmd), "Creating your webspace...", " success!", func() error {
				return c.Create(ctx, req)
			})
		}),
	}

	cmd.Flags().BoolVar(&noPassword, "no-password", false, "Don't set a root password (disables SSH password auth)")
	cmd.Flags().StringVarP(&sshKey, "ssh-key", "k", "", "Public SSH key to install for root")

	return cmd
}

// askNewPassword prompts for a password twice and fails if the entries
// differ.
func (a *app) askNewPassword() (string, error) {
	password, err := a.prompter.Password("New root password: ")
	if err != nil {
		return "", err
	}
	confirm, err := a.prompter.Password("Confirm: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", webspaced.Errorf("Passwords don't match!")
	}
	return password, nil
}
