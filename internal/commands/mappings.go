package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2ofx/internal/config"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
)

func newMappingsCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: "List the built-in source mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var custom *mapping.HeaderMap
			if f.configPath != "" {
				cfg, err := config.Load(f.configPath)
				if err != nil {
					return err
				}
				custom = cfg.Custom
			}

			out := cmd.OutOrStdout()
			for _, name := range mapping.Sources() {
				hm, err := mapping.Lookup(name, custom)
				if err != nil {
					continue
				}
				kind := "simple"
				if hm.Compound {
					kind = "compound"
				}
				fmt.Fprintf(out, "%s (%s)\n", name, kind)

				columns := hm.Columns()
				for _, field := range mapping.FieldNames() {
					if col, ok := columns[field]; ok {
						fmt.Fprintf(out, "  %-14s %s\n", field+":", col)
					}
				}
			}
			return nil
		},
	}
}
