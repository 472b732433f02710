package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/netsoc/webspace-cli/pkg/cliconfig"
	"github.com/netsoc/webspace-cli/pkg/logging"
	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	socket     string
	user       string
	configFile string
	logLevel   string
	jsonOutput bool
	verbose    bool
}

// app is the state of one CLI invocation.
type app struct {
	flags    globalFlags
	prompter Prompter

	// Set by loadConfig before any command runs.
	cfg    *cliconfig.CLIConfig
	logger *slog.Logger
}

// NewRootCmd builds the webspace command tree. Prompts for passwords and
// confirmations go through p.
func NewRootCmd(p Prompter) *cobra.Command {
	a := &app{
		prompter: p,
		cfg:      cliconfig.NewDefault(),
		logger:   logging.Nop(),
	}

	root := &cobra.Command{
		Use:   "webspace",
		Short: "Manage your webspace",
		Long: `webspace manages your webspace through the webspaced daemon.

The daemon is reached over a Unix socket (default: /run/webspaced/server.sock).
Configuration can be provided via flags, environment variables (WEBSPACE_*),
or a configuration file (.webspacerc.yaml, or ~/.config/webspace/config.yaml).`,
		SilenceUsage:      true,
		SilenceErrors:     true, // We handle errors in Execute()
		PersistentPreRunE: a.loadConfig,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.socket, "socket", "c", cliconfig.DefaultSocket, "Path to the daemon's Unix socket")
	pf.StringVarP(&a.flags.user, "user", "u", "", "User to perform operations as (only works if you are webspace admin)")
	pf.StringVar(&a.flags.configFile, "config", "", "Config file to use instead of .webspacerc.yaml / ~/.config/webspace/config.yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.BoolVar(&a.flags.jsonOutput, "json", false, "Output command results in JSON format")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Log daemon requests to stderr")

	root.AddCommand(
		a.newImagesCmd(),
		a.newInitCmd(),
		a.newStatusCmd(),
		a.newBootCmd(),
		a.newShutdownCmd(),
		a.newRebootCmd(),
		a.newDeleteCmd(),
		a.newLogCmd(),
		a.newConfigCmd(),
		a.newDomainsCmd(),
		a.newPortsCmd(),
		a.newVersionCmd(),
	)

	return root
}

// Execute runs the CLI against os.Args. Every failure is printed to stderr
// and Execute returns normally.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd(newPrompter(os.Stdin, os.Stderr))
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
	}
}

// loadConfig resolves configuration from all sources and sets up logging.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := cliconfig.LoadAll(a.flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cliconfig.MergeConfig(cfg, a.flagConfig(cmd), cliconfig.SourceFlag)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.logger = logging.ForCLI(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat, cfg.Verbose)
	a.logger.Debug("config resolved",
		"socket", cfg.Socket,
		"socketSource", cfg.Sources["socket"],
		"user", cfg.User,
		"timeout", cfg.RequestTimeout(),
	)
	return nil
}

// flagConfig returns the values of the global flags the user actually set.
func (a *app) flagConfig(cmd *cobra.Command) *cliconfig.CLIConfig {
	flags := cmd.Flags()
	fc := &cliconfig.CLIConfig{SetFields: map[string]bool{}}

	if flags.Changed("socket") {
		fc.Socket = a.flags.socket
		fc.SetFields["socket"] = true
	}
	if flags.Changed("user") {
		fc.User = a.flags.user
		fc.SetFields["user"] = true
	}
	if flags.Changed("log-level") {
		fc.LogLevel = a.flags.logLevel
		fc.SetFields["logLevel"] = true
	}
	if flags.Changed("json") {
		fc.JSON = a.flags.jsonOutput
		fc.SetFields["json"] = true
	}
	if flags.Changed("verbose") {
		fc.Verbose = a.flags.verbose
		fc.SetFields["verbose"] = true
	}
	return fc
}

// client creates the daemon client for this invocation.
func (a *app) client() *webspaced.Client {
	c := webspaced.New(a.cfg.Socket,
		webspaced.WithUser(a.cfg.User),
		webspaced.WithTimeout(a.cfg.RequestTimeout()),
		webspaced.WithLogger(a.logger),
	)
	a.logger.Debug("using daemon", "address", c.BaseURL(), "user", c.User())
	return c
}
