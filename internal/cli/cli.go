package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/buildinfo"
	"github.com/matzehuels/steadfast/pkg/config"
	"github.com/matzehuels/steadfast/pkg/steadfast"
)

// appName is the application name used for display.
const appName = "steadfast"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	apiKey     string
	secretKey  string
	baseURL    string
	timeout    time.Duration
	verbose    bool
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // command output
	Err    io.Writer // spinner and progress

	flags globalFlags

	// newClient builds the API client; tests swap it for one pointing at
	// an httptest server.
	newClient func(cfg config.Config, logger *log.Logger) (*steadfast.Client, error)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		newClient: func(cfg config.Config, logger *log.Logger) (*steadfast.Client, error) {
			return steadfast.NewFromConfig(cfg, steadfast.WithLogger(logger))
		},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Steadfast courier API client",
		Long:          `steadfast creates and tracks Steadfast courier consignments, manages return requests and inspects payments from the command line.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.flags.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/steadfast/config.toml)")
	pf.StringVar(&c.flags.apiKey, "api-key", "", "API key (overrides config and "+config.EnvAPIKey+")")
	pf.StringVar(&c.flags.secretKey, "secret-key", "", "secret key (overrides config and "+config.EnvSecretKey+")")
	pf.StringVar(&c.flags.baseURL, "base-url", "", "API base URL")
	pf.DurationVar(&c.flags.timeout, "timeout", 0, "per-attempt request timeout (e.g. 30s)")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.balanceCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.returnCommand())
	root.AddCommand(c.paymentCommand())
	root.AddCommand(c.locationsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves configuration and applies flag overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return cfg, err
	}
	if c.flags.apiKey != "" {
		cfg.APIKey = c.flags.apiKey
	}
	if c.flags.secretKey != "" {
		cfg.SecretKey = c.flags.secretKey
	}
	if c.flags.baseURL != "" {
		cfg.BaseURL = c.flags.baseURL
	}
	if c.flags.timeout > 0 {
		cfg.Timeout = config.Duration{Duration: c.flags.timeout}
	}
	if c.flags.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// client builds an API client for a command.
func (c *CLI) client(cmd *cobra.Command) (*steadfast.Client, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(cmd.Context())
	if !c.flags.verbose && cfg.LogLevel != "" {
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}
	logger.Debug("loaded configuration", "config", cfg.String())
	return c.newClient(cfg, logger)
}
