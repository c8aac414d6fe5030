package main

import (
	"Espuma/internal/formulation"
	"Espuma/internal/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var registry = formulation.Default()

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "espuma",
		Short:        "Calculadora de formulações de espuma",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zap.ReplaceGlobals(log.InitLog(logLevel))
		},
	}

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newImportCmd())

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return rootCmd
}
