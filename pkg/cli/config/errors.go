package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound       = goerr.New("configuration file not found")
	ErrInvalidConfig        = goerr.New("invalid configuration")
	ErrDuplicateIndicatorID = goerr.New("duplicate indicator ID")
	ErrInvalidIndicatorID   = goerr.New("invalid indicator ID format")
	ErrMissingName          = goerr.New("name is required")
	ErrMissingOptionValue   = goerr.New("option value is required")
	ErrDuplicateOptionValue = goerr.New("duplicate option value")
	ErrEmptyOption          = goerr.New("option requires a label or a color")
	ErrInvalidColor         = goerr.New("invalid color")
	ErrInvalidValueFormat   = goerr.New("invalid value format")
	ErrConflictingHideRule  = goerr.New("hide and hide_if_falsy cannot be combined")
	ErrInvalidHideRule      = goerr.New("hide must be a scalar or an array of scalars")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	IndicatorIDKey = "indicator_id"
	OptionValueKey = "option_value"
	OptionIndexKey = "option_index"
	ColorKey       = "color"
	ValueFormatKey = "value_format"
)
