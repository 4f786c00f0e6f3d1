// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/luxfi/hacluster/cmd/infocmd"
	"github.com/luxfi/hacluster/pkg/application"
	"github.com/luxfi/hacluster/pkg/config"
	"github.com/luxfi/hacluster/pkg/constants"
)

var (
	app *application.HACluster

	logLevel string
	Version  = "0.1.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	app = application.New()

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "hacluster",
		Long: `hacluster - export the configuration of a running HA cluster as facts
for the ha_cluster Ansible role.

The corosync configuration is read from the JSON document printed by
'pcs cluster config --output-format json' and, optionally, combined with a
map of node names to pcs addresses.

QUICK START:

  # Export facts to stdout
  hacluster info export --corosync-conf corosync.json --pcs-addresses pcs.json

  # Write facts and an inventory for ansible-playbook
  hacluster info export --corosync-conf corosync.json --inventory-dir ./inventory

  # List cluster nodes
  hacluster info nodes --corosync-conf corosync.json`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hacluster/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	rootCmd.AddCommand(infocmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	log, err := setupLogging(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	baseDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		baseDir = filepath.Join(home, constants.BaseDirName)
	}
	cf := config.New()
	if err := cf.Load(cfgFile, baseDir); err != nil {
		return fmt.Errorf("failed reading config file: %w", err)
	}
	if cf.ConfigFileExists() {
		log.Debug("using config file", zap.String("config-file", cf.GetConfigPath()))
	}

	app.Setup(log, cf)
	return nil
}

// setupLogging builds the application logger. Logs go to errWriter so that
// stdout only carries command output.
func setupLogging(cmd *cobra.Command, errWriter io.Writer) (*zap.Logger, error) {
	level := zapcore.ErrorLevel
	flags := cmd.Flags()
	switch {
	case flags.Changed("debug"):
		level = zapcore.DebugLevel
	case flags.Changed("verbose"):
		level = zapcore.InfoLevel
	case flags.Changed("quiet"):
		level = zapcore.ErrorLevel
	case logLevel != "":
		parsed, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		level = parsed
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(errWriter),
		level,
	)
	return zap.New(core), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
