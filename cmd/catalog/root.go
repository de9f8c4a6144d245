package main

import (
	"github.com/spf13/cobra"
)

const serviceName = "catalog"

// envFile is set by the --env-file flag.
var envFile string

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "In-memory product catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
