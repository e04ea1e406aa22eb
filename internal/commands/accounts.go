package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2ofx/internal/accounts"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

func newAccountsCommand(f *flags) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "accounts [source]",
		Short: "List the accounts found in an export as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}

			var source string
			if len(args) > 0 {
				source = args[0]
			}
			conv, rows, err := prepare(cmd, cfg, source)
			if err != nil {
				return err
			}

			accts, err := conv.Accounts(rows)
			if err != nil {
				return err
			}
			if accountType != "" {
				accts = accounts.NewService(accts).ByType(model.AccountType(accountType))
			}
			return accounts.WriteAccounts(cmd.OutOrStdout(), accts)
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "", "only list accounts of this type")
	return cmd
}
