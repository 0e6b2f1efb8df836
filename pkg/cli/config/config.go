package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/indicator/pkg/domain/model/config"
	"github.com/secmon-lab/indicator/pkg/domain/model/indicator"
	"github.com/secmon-lab/indicator/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the indicator definitions loaded from TOML
type AppConfig struct {
	Indicators []Indicator `toml:"indicator"`

	path string
}

// Indicator represents one indicator field definition
type Indicator struct {
	ID             string   `toml:"id"`
	Name           string   `toml:"name"`
	Description    string   `toml:"description"`
	Attribute      string   `toml:"attribute"`
	WithoutLabels  bool     `toml:"without_labels"`
	UseValues      bool     `toml:"use_values"`
	ValueFormat    string   `toml:"value_format"`
	Unknown        *string  `toml:"unknown"`
	HideIfFalsy    bool     `toml:"hide_if_falsy"`
	Hide           any      `toml:"hide"`
	ShowOnCreation bool     `toml:"show_on_creation"`
	ShowOnUpdate   bool     `toml:"show_on_update"`
	Options        []Option `toml:"option"`
}

// Option maps one attribute value to a label and/or a color
type Option struct {
	Value any    `toml:"value"`
	Label string `toml:"label"`
	Color string `toml:"color"`
}

// Flags returns CLI flags for the indicator definitions
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Indicator definition file or directory of *.toml files",
			Required:    true,
			Sources:     cli.EnvVars("INDICATOR_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the definitions pointed to by the --config flag and
// converts them into configured indicator fields
func (a *AppConfig) Configure() (*domainConfig.IndicatorSet, error) {
	loaded, err := LoadAppConfiguration(a.path)
	if err != nil {
		return nil, err
	}
	a.Indicators = loaded.Indicators

	return a.ToDomainIndicatorSet()
}

// Validate checks if the Indicator is valid
func (i *Indicator) Validate() error {
	id := types.IndicatorID(i.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidIndicatorID, err.Error(), goerr.V(IndicatorIDKey, i.ID))
	}
	if i.Name == "" {
		return goerr.Wrap(ErrMissingName, "indicator name is required", goerr.V(IndicatorIDKey, i.ID))
	}

	if i.ValueFormat != "" {
		if _, err := types.ParseValueFormat(i.ValueFormat); err != nil {
			return goerr.Wrap(ErrInvalidValueFormat, err.Error(),
				goerr.V(IndicatorIDKey, i.ID),
				goerr.V(ValueFormatKey, i.ValueFormat))
		}
	}

	if i.Hide != nil {
		if i.HideIfFalsy {
			return goerr.Wrap(ErrConflictingHideRule, "invalid hide rule", goerr.V(IndicatorIDKey, i.ID))
		}
		if err := validateHide(i.Hide); err != nil {
			return goerr.Wrap(err, "invalid hide rule", goerr.V(IndicatorIDKey, i.ID))
		}
	}

	seen := make(map[string]bool)
	for idx, opt := range i.Options {
		if err := opt.Validate(); err != nil {
			return goerr.Wrap(err, "invalid option",
				goerr.V(IndicatorIDKey, i.ID),
				goerr.V(OptionIndexKey, idx))
		}
		key := indicator.Key(opt.Value)
		if seen[key] {
			return goerr.Wrap(ErrDuplicateOptionValue, "option values must be unique",
				goerr.V(IndicatorIDKey, i.ID),
				goerr.V(OptionValueKey, opt.Value))
		}
		seen[key] = true
	}

	return nil
}

// Validate checks if the Option is valid
func (o *Option) Validate() error {
	if o.Value == nil {
		return goerr.Wrap(ErrMissingOptionValue, "option has no value")
	}
	if !isScalar(o.Value) {
		return goerr.Wrap(ErrInvalidConfig, "option value must be a scalar",
			goerr.V(OptionValueKey, o.Value))
	}
	if o.Label == "" && o.Color == "" {
		return goerr.Wrap(ErrEmptyOption, "option has neither label nor color",
			goerr.V(OptionValueKey, o.Value))
	}
	if o.Color != "" {
		if err := types.Color(o.Color).Validate(); err != nil {
			return goerr.Wrap(ErrInvalidColor, err.Error(),
				goerr.V(OptionValueKey, o.Value),
				goerr.V(ColorKey, o.Color))
		}
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	ids := make(map[string]bool)
	for _, ind := range a.Indicators {
		if err := ind.Validate(); err != nil {
			return goerr.Wrap(err, "invalid indicator")
		}
		if ids[ind.ID] {
			return goerr.Wrap(ErrDuplicateIndicatorID, "indicator IDs must be unique", goerr.V(IndicatorIDKey, ind.ID))
		}
		ids[ind.ID] = true
	}
	return nil
}

// LoadAppConfiguration loads indicator definitions from a TOML file, or from
// every *.toml file in a directory. Indicator IDs must be unique across files.
func LoadAppConfiguration(path string) (*AppConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to stat config path", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to stat config path", goerr.V(ConfigPathKey, path))
	}

	files := []string{path}
	if info.IsDir() {
		files, err = listTOMLFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, goerr.Wrap(ErrConfigNotFound, "no TOML files in config directory", goerr.V(ConfigPathKey, path))
		}
	}

	merged := &AppConfig{path: path}
	for _, file := range files {
		cfg, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		merged.Indicators = append(merged.Indicators, cfg.Indicators...)
	}

	if err := merged.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return merged, nil
}

func loadFile(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ConfigPathKey, path))
	}
	return &config, nil
}

func listTOMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config directory", goerr.V(ConfigPathKey, dir))
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ToDomainIndicatorSet converts AppConfig to configured indicator fields
func (a *AppConfig) ToDomainIndicatorSet() (*domainConfig.IndicatorSet, error) {
	set := &domainConfig.IndicatorSet{
		Definitions: make([]domainConfig.IndicatorDefinition, 0, len(a.Indicators)),
	}

	for _, ind := range a.Indicators {
		field, err := ind.ToField()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build indicator", goerr.V(IndicatorIDKey, ind.ID))
		}
		set.Definitions = append(set.Definitions, domainConfig.IndicatorDefinition{
			ID:          types.IndicatorID(ind.ID),
			Description: ind.Description,
			Field:       field,
		})
	}

	return set, nil
}

// ToField builds the indicator field described by the definition
func (i *Indicator) ToField() (*indicator.Field, error) {
	attribute := i.Attribute
	if attribute == "" {
		attribute = i.ID
	}
	field := indicator.New(i.Name, attribute)

	colors := make(map[any]string)
	labels := make(map[any]string)
	for _, opt := range i.Options {
		if opt.Color != "" {
			colors[opt.Value] = opt.Color
		}
		if opt.Label != "" {
			labels[opt.Value] = opt.Label
		}
	}
	field.Colors(colors)
	if len(labels) > 0 {
		field.Labels(labels)
	}

	if i.UseValues || i.ValueFormat != "" {
		var fn indicator.ValueFunc
		if i.ValueFormat != "" {
			f, err := indicator.Formatter(types.ValueFormat(i.ValueFormat))
			if err != nil {
				return nil, goerr.Wrap(ErrInvalidValueFormat, err.Error(), goerr.V(ValueFormatKey, i.ValueFormat))
			}
			fn = f
		}
		field.UseValues(fn)
	}

	// Applied after Labels and UseValues, which both turn labels back on
	if i.WithoutLabels {
		field.WithoutLabels()
	}

	if i.Unknown != nil {
		field.Unknown(*i.Unknown)
	}

	switch {
	case i.HideIfFalsy:
		field.ShouldHideIfFalsy()
	case i.Hide != nil:
		if values, ok := i.Hide.([]any); ok {
			field.ShouldHide(indicator.HideIn(values...))
		} else {
			field.ShouldHide(indicator.HideEqual(i.Hide))
		}
	}

	if i.ShowOnCreation {
		field.ShowOnCreation()
	}
	if i.ShowOnUpdate {
		field.ShowOnUpdate()
	}

	return field, nil
}

func validateHide(hide any) error {
	if values, ok := hide.([]any); ok {
		for _, v := range values {
			if !isScalar(v) {
				return goerr.Wrap(ErrInvalidHideRule, "hide array must contain scalars only")
			}
		}
		return nil
	}
	if !isScalar(hide) {
		return goerr.Wrap(ErrInvalidHideRule, "hide must be a scalar or an array")
	}
	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, int64, float64, int, float32, int32:
		return true
	default:
		return false
	}
}
