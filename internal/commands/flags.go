package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2ofx/internal/config"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// flags holds command line values. They override the config file only when
// set explicitly.
type flags struct {
	configPath   string
	mapping      string
	delimiter    string
	inputFormat  string
	qif          bool
	transfer     bool
	primary      string
	collapse     []string
	start        string
	end          string
	currency     string
	language     string
	accountType  string
	accountsFile string
	overwrite    bool
	timeZone     string
	splitAccount string
	verbose      bool
}

func (f *flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "C", "", "YAML config file")
	pf.StringVarP(&f.mapping, "mapping", "m", "mint", "source mapping (see the mappings command)")
	pf.StringVarP(&f.delimiter, "delimiter", "d", ",", `CSV field delimiter ("tab" or \t for tabs)`)
	pf.StringVar(&f.inputFormat, "input-format", "csv", "input format: csv or xlsx (guessed from the source extension)")
	pf.BoolVarP(&f.qif, "qif", "q", false, "write QIF instead of OFX")
	pf.BoolVarP(&f.transfer, "transfer", "t", false, "write OFX intrabank transfers instead of statements")
	pf.StringVarP(&f.primary, "primary", "p", "", "skip transactions whose split account is this account")
	pf.StringSliceVarP(&f.collapse, "collapse", "c", nil, "comma separated accounts whose splits are merged")
	pf.StringVarP(&f.start, "start", "s", "", "first date to include (YYYY-MM-DD)")
	pf.StringVarP(&f.end, "end", "e", "", "first date to exclude (YYYY-MM-DD)")
	pf.StringVar(&f.currency, "currency", "USD", "OFX currency code")
	pf.StringVarP(&f.language, "language", "l", "ENG", "OFX language code")
	pf.StringVarP(&f.accountType, "account-type", "a", "", "use this account type for every account")
	pf.StringVar(&f.accountsFile, "accounts-file", "", "account listing whose types replace classification")
	pf.BoolVarP(&f.overwrite, "overwrite", "o", false, "overwrite an existing destination file")
	pf.StringVar(&f.timeZone, "time-zone", "", "IANA zone for input dates (default: system zone)")
	pf.StringVar(&f.splitAccount, "split-account", "Orphan", "split account for rows without one")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline stages to stderr")
}

// load builds the effective config: defaults, then the config file, then
// explicitly set flags.
func (f *flags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("mapping") {
		cfg.Mapping = f.mapping
	}
	if set("delimiter") {
		cfg.Delimiter = parseDelimiter(f.delimiter)
	}
	if set("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if set("qif") {
		cfg.Output = string(model.FormatOFX)
		if f.qif {
			cfg.Output = string(model.FormatQIF)
		}
	}
	if set("transfer") {
		cfg.Transfer = f.transfer
	}
	if set("primary") {
		cfg.Primary = f.primary
	}
	if set("collapse") {
		cfg.Collapse = trimAll(f.collapse)
	}
	if set("start") {
		cfg.Start = f.start
	}
	if set("end") {
		cfg.End = f.end
	}
	if set("currency") {
		cfg.Currency = f.currency
	}
	if set("language") {
		cfg.Language = f.language
	}
	if set("account-type") {
		cfg.AccountType = f.accountType
	}
	if set("accounts-file") {
		cfg.AccountsFile = f.accountsFile
	}
	if set("overwrite") {
		cfg.Overwrite = f.overwrite
	}
	if set("time-zone") {
		cfg.TimeZone = f.timeZone
	}
	if set("split-account") {
		cfg.DefaultSplitAccount = f.splitAccount
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDelimiter(s string) string {
	switch strings.ToLower(s) {
	case `\t`, "tab":
		return "\t"
	default:
		return s
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// delimiterRune returns the single delimiter rune of a validated config.
func delimiterRune(cfg *config.Config) (rune, error) {
	r := []rune(cfg.Delimiter)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	return r[0], nil
}
