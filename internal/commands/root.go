package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2ofx/internal/buildinfo"
	"github.com/cleared-dev/csv2ofx/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it converts source to dest.
func NewRootCommand() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "csv2ofx [flags] [source] [dest]",
		Short: "Convert CSV and XLSX transaction exports to OFX or QIF",
		Long: "Convert a transaction export to OFX or QIF.\n\n" +
			"source and dest default to stdin and stdout; \"-\" selects them explicitly.",
		Version: buildinfo.String(),
		Args:    cobra.MaximumNArgs(2),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.NewConsole(cmd.ErrOrStderr(), f.verbose)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, f, args)
		},
	}

	f.register(rootCmd)

	rootCmd.AddCommand(newAccountsCommand(f))
	rootCmd.AddCommand(newMappingsCommand(f))

	return rootCmd
}
