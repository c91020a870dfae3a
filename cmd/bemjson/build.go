package main

import (
	"github.com/aretw0/bemjson/internal/cli"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Build a tree and print the result",
	Long: `Reads a BEMJSON tree from file (or stdin when omitted or "-"), applies the
declarations of the rule file and prints the built tree to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		return cli.RunBuild(opts, input, cmd.OutOrStdout(), loggerFor(opts))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
