package main

import (
	"log/slog"
	"os"

	"github.com/aretw0/bemjson/internal/cli"
	"github.com/aretw0/bemjson/internal/logging"
	"github.com/aretw0/bemjson/pkg/identity"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bemjson",
	Short: "bemjson transforms BEMJSON trees with declarative rules",
	Long: `bemjson applies block declarations, written as YAML or JSON rule files,
to BEMJSON trees read from files, stdin or HTTP requests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("rules", "r", "", "Rule file (YAML or JSON) with block declarations")
	flags.Bool("debug", false, "Log registration and build events to stderr")
	flags.StringP("format", "f", "", "Tree format: json or yaml (default: inferred from the input file, else json)")
	flags.Bool("pretty", false, "Indent JSON output")
	flags.String("id-strategy", identity.StrategyCounter, "Identifier generator: counter or uuid")
	flags.String("id-prefix", identity.DefaultPrefix, "Prefix of generated identifiers")
}

// optionsFrom reads the persistent flags.
func optionsFrom(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	var opts cli.Options
	opts.RulesPath, _ = flags.GetString("rules")
	opts.Debug, _ = flags.GetBool("debug")
	opts.Format, _ = flags.GetString("format")
	opts.Pretty, _ = flags.GetBool("pretty")
	opts.IDStrategy, _ = flags.GetString("id-strategy")
	opts.IDPrefix, _ = flags.GetString("id-prefix")
	return opts
}

func loggerFor(opts cli.Options) *slog.Logger {
	return logging.New(logging.Level(opts.Debug))
}
