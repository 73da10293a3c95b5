package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steadfast/pkg/config"
	"github.com/matzehuels/steadfast/pkg/httputil"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect client configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, p)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration with credentials masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printKeyValue(c.Out, "Base URL", cfg.BaseURL)
			printKeyValue(c.Out, "Timeout", cfg.Timeout.String())
			printKeyValue(c.Out, "Max retries", fmt.Sprint(cfg.MaxRetries))
			printKeyValue(c.Out, "Retry backoff", cfg.RetryBackoff.String())
			printKeyValue(c.Out, "Log level", cfg.LogLevel)
			printKeyValue(c.Out, "API key", masked(cfg.APIKey))
			printKeyValue(c.Out, "Secret key", masked(cfg.SecretKey))
			if err := cfg.Validate(); err != nil {
				printWarning(c.Out, "%v", err)
			}
			return nil
		},
	})
	return cmd
}

func masked(s string) string {
	if s == "" {
		return "(unset)"
	}
	return httputil.Mask
}
