// Package commands implements the campaign-sheets CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const APP = "campaign-sheets"

var (
	debug  bool
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:           APP,
	Short:         "Writes aggregated campaign report metrics to a Google Sheets worksheet",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		log, err := config.Build()
		if err != nil {
			return fmt.Errorf("unable to initialise logging (%v)", err)
		}

		logger = log.Sugar()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging information")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
