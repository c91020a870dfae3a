package main

import (
	"github.com/aretw0/bemjson/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [rules]",
	Short: "Check a rule file",
	Long:  `Parses the rule file and reports rules that cannot compile, have no actions or duplicate another rule.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("rules")
		if !cmd.Flags().Changed("rules") && len(args) > 0 {
			path = args[0]
		}
		return cli.RunValidate(path, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
