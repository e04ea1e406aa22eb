package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/thlib/go-timezone-local/tzlocal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/csv2ofx/internal/accounts"
	"github.com/cleared-dev/csv2ofx/internal/extract"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// DateLayout is the form of the start and end bounds.
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		if tz == "" {
			return true
		}
		_, err := time.LoadLocation(tz)
		return err == nil
	})
	return v
}

// Config holds every option of a conversion run. It is loaded from a YAML
// file and then overridden by command line flags.
type Config struct {
	Mapping     string `yaml:"mapping" validate:"required"`
	Delimiter   string `yaml:"delimiter" validate:"required,len=1"`
	InputFormat string `yaml:"input_format" validate:"oneof=csv xlsx"`
	Output      string `yaml:"output" validate:"oneof=qif ofx"`
	Transfer    bool   `yaml:"transfer,omitempty"`

	// Primary names a split account whose transactions are internal
	// transfers and are left out of the output.
	Primary  string   `yaml:"primary,omitempty"`
	Collapse []string `yaml:"collapse,omitempty" validate:"dive,required"`

	// Start is inclusive, End exclusive. Either may be empty.
	Start string `yaml:"start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	End   string `yaml:"end,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Currency    string `yaml:"currency" validate:"required,len=3"`
	Language    string `yaml:"language" validate:"required"`
	AccountType string `yaml:"account_type,omitempty"`
	// AccountsFile is an account listing whose types pin classification.
	AccountsFile string `yaml:"accounts_file,omitempty"`
	Overwrite   bool   `yaml:"overwrite,omitempty"`
	TimeZone    string `yaml:"time_zone,omitempty" validate:"timezone"`

	DefaultSplitAccount string `yaml:"default_split_account" validate:"required"`

	// Custom is the header map used when Mapping is "custom".
	Custom *mapping.HeaderMap `yaml:"custom,omitempty"`

	QIFTypes accounts.TypeTable `yaml:"qif_types,omitempty" validate:"dive"`
	OFXTypes accounts.TypeTable `yaml:"ofx_types,omitempty" validate:"dive"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Mapping:             string(mapping.SourceMint),
		Delimiter:           ",",
		InputFormat:         "csv",
		Output:              string(model.FormatOFX),
		Currency:            "USD",
		Language:            "ENG",
		DefaultSplitAccount: extract.DefaultSplitAccount,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks field constraints and the combinations between them.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(c.Output)
	c.InputFormat = strings.ToLower(c.InputFormat)
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := mapping.Lookup(c.Mapping, c.Custom); err != nil {
		return err
	}
	if c.Transfer && c.Format() != model.FormatOFX {
		return fmt.Errorf("invalid config: transfer mode requires ofx output")
	}
	start, end, err := c.Range()
	if err != nil {
		return err
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return fmt.Errorf("invalid config: start %s is not before end %s", c.Start, c.End)
	}
	return nil
}

// Format returns the output format.
func (c *Config) Format() model.Format {
	return model.Format(strings.ToLower(c.Output))
}

// Location returns the zone that dates without an offset are read in. An
// empty TimeZone means the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		tz, err := tzlocal.RuntimeTZ()
		if err != nil || tz == "" {
			return time.Local, nil
		}
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc, nil
		}
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Range parses Start and End in the configured location. Unset bounds are
// returned as the zero time.
func (c *Config) Range() (start, end time.Time, err error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if c.Start != "" {
		if start, err = time.ParseInLocation(DateLayout, c.Start, loc); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing start: %w", err)
		}
	}
	if c.End != "" {
		if end, err = time.ParseInLocation(DateLayout, c.End, loc); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing end: %w", err)
		}
	}
	return start, end, nil
}

// TypeTable returns the configured type table for the output format, or
// the built-in one.
func (c *Config) TypeTable() accounts.TypeTable {
	switch c.Format() {
	case model.FormatQIF:
		if len(c.QIFTypes) > 0 {
			return c.QIFTypes
		}
	default:
		if len(c.OFXTypes) > 0 {
			return c.OFXTypes
		}
	}
	return accounts.DefaultTable(c.Format())
}
