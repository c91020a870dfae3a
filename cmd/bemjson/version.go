package main

import (
	"github.com/aretw0/bemjson"
	"github.com/aretw0/bemjson/internal/cli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bemjson",
	Run: func(cmd *cobra.Command, args []string) {
		cli.PrintLabelValue(cmd.OutOrStdout(), "bemjson version", bemjson.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
