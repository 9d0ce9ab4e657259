package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vitalvas/polysecret/xlogger"
)

// app holds the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "polysecret",
		Short:         "Split and recover secrets hidden in integer polynomials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML or JSON config file")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newRecoverCommand(a),
		newSplitCommand(a),
		newDecodeCommand(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	a.cfg = cfg
	a.logger = xlogger.New(xlogger.Config{
		Level:   cfg.Log.Level,
		LogType: cfg.Log.Format,
		Output:  cmd.ErrOrStderr(),
	})

	return nil
}
