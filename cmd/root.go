// Package cmd is the command-line entry point of the demo request service.
//
// Configuration is read from defaults, an optional YAML file (--config), a
// .env file in the working directory and the process environment, in
// increasing order of precedence.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ckscontracting/demo-request/pkg/config"
	"github.com/ckscontracting/demo-request/pkg/logging"
)

type rootOptions struct {
	configFile string
	debug      bool

	cfg *config.Config
	log *logrus.Logger
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "demo-request",
		Short:        "Request-a-demo contact form service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))

	return rootCmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if o.debug {
		level = "debug"
	}
	o.log = logging.NewLogger(level, cfg.LogFormat, os.Stderr)
	o.cfg = cfg

	if envErr != nil {
		o.log.Debug("No .env file found, relying on OS environment variables")
	}
	return nil
}
