package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2ofx/internal/accounts"
	"github.com/cleared-dev/csv2ofx/internal/config"
	"github.com/cleared-dev/csv2ofx/internal/convert"
	"github.com/cleared-dev/csv2ofx/internal/importer"
	"github.com/cleared-dev/csv2ofx/internal/logger"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
	"github.com/cleared-dev/csv2ofx/internal/output"
)

func runConvert(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := f.load(cmd)
	if err != nil {
		return err
	}

	var source, dest string
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		dest = args[1]
	}

	conv, rows, err := prepare(cmd, cfg, source)
	if err != nil {
		return err
	}

	content, err := conv.Convert(rows)
	if err != nil {
		return err
	}
	return output.Write(dest, content, cfg.Overwrite, cmd.OutOrStdout())
}

// prepare reads source and builds the converter configured by cfg.
func prepare(cmd *cobra.Command, cfg *config.Config, source string) (*convert.Converter, []model.Row, error) {
	log := logger.FromContext(cmd.Context())

	hm, err := mapping.Lookup(cfg.Mapping, cfg.Custom)
	if err != nil {
		return nil, nil, err
	}

	delim, err := delimiterRune(cfg)
	if err != nil {
		return nil, nil, err
	}
	format := cfg.InputFormat
	if !cmd.Flags().Changed("input-format") {
		format = importer.DetectFormat(source, cfg.InputFormat)
	}
	rows, err := importer.DefaultRegistry(delim).ReadFile(source, format, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}
	log = logger.WithFields(log, map[string]any{
		"mapping": cfg.Mapping,
		"format":  format,
	})
	log.Debug().Int("rows", len(rows)).Msg("read source")

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	start, end, err := cfg.Range()
	if err != nil {
		return nil, nil, err
	}

	pinned, err := loadPinned(cfg.AccountsFile)
	if err != nil {
		return nil, nil, err
	}

	opts := convert.Options{
		Source:              mapping.Source(cfg.Mapping),
		Format:              cfg.Format(),
		Transfer:            cfg.Transfer,
		Primary:             cfg.Primary,
		Collapse:            cfg.Collapse,
		Start:               start,
		End:                 end,
		Currency:            cfg.Currency,
		Language:            cfg.Language,
		AccountType:         model.AccountType(cfg.AccountType),
		TypeTable:           cfg.TypeTable(),
		Pinned:              pinned,
		DefaultSplitAccount: cfg.DefaultSplitAccount,
		Location:            loc,
	}
	return convert.New(hm, opts, log), rows, nil
}

// loadPinned reads an account listing written by the accounts command.
func loadPinned(path string) (*accounts.Service, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading accounts file: %w", err)
	}
	defer f.Close()

	accts, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("accounts file %s: %w", path, err)
	}
	return accounts.NewService(accts), nil
}
