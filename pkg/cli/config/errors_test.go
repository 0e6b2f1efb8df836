package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indicator/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrConfigNotFound can be identified",
			err:           goerr.Wrap(config.ErrConfigNotFound, "wrapped"),
			sentinelError: config.ErrConfigNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidConfig can be identified",
			err:           goerr.Wrap(config.ErrInvalidConfig, "wrapped"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     true,
		},
		{
			name:          "ErrDuplicateIndicatorID can be identified",
			err:           goerr.Wrap(config.ErrDuplicateIndicatorID, "wrapped"),
			sentinelError: config.ErrDuplicateIndicatorID,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidIndicatorID can be identified",
			err:           goerr.Wrap(config.ErrInvalidIndicatorID, "wrapped"),
			sentinelError: config.ErrInvalidIndicatorID,
			wantMatch:     true,
		},
		{
			name:          "ErrMissingName can be identified",
			err:           goerr.Wrap(config.ErrMissingName, "wrapped"),
			sentinelError: config.ErrMissingName,
			wantMatch:     true,
		},
		{
			name:          "ErrMissingOptionValue can be identified",
			err:           goerr.Wrap(config.ErrMissingOptionValue, "wrapped"),
			sentinelError: config.ErrMissingOptionValue,
			wantMatch:     true,
		},
		{
			name:          "ErrDuplicateOptionValue can be identified",
			err:           goerr.Wrap(config.ErrDuplicateOptionValue, "wrapped"),
			sentinelError: config.ErrDuplicateOptionValue,
			wantMatch:     true,
		},
		{
			name:          "ErrEmptyOption can be identified",
			err:           goerr.Wrap(config.ErrEmptyOption, "wrapped"),
			sentinelError: config.ErrEmptyOption,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidColor can be identified",
			err:           goerr.Wrap(config.ErrInvalidColor, "wrapped"),
			sentinelError: config.ErrInvalidColor,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidValueFormat can be identified",
			err:           goerr.Wrap(config.ErrInvalidValueFormat, "wrapped"),
			sentinelError: config.ErrInvalidValueFormat,
			wantMatch:     true,
		},
		{
			name:          "ErrConflictingHideRule can be identified",
			err:           goerr.Wrap(config.ErrConflictingHideRule, "wrapped"),
			sentinelError: config.ErrConflictingHideRule,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidHideRule can be identified",
			err:           goerr.Wrap(config.ErrInvalidHideRule, "wrapped"),
			sentinelError: config.ErrInvalidHideRule,
			wantMatch:     true,
		},
		{
			name:          "Different sentinel errors do not match",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextExtraction(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		sentinel  error
		key       string
		wantValue any
	}{
		{
			name: "duplicate indicator carries its ID",
			content: `
[[indicator]]
id = "status"
name = "Status"

[[indicator]]
id = "status"
name = "Status"
`,
			sentinel:  config.ErrDuplicateIndicatorID,
			key:       config.IndicatorIDKey,
			wantValue: "status",
		},
		{
			name: "invalid color carries the color",
			content: `
[[indicator]]
id = "status"
name = "Status"

  [[indicator.option]]
  value = 1
  color = "ultraviolet"
`,
			sentinel:  config.ErrInvalidColor,
			key:       config.ColorKey,
			wantValue: "ultraviolet",
		},
		{
			name: "invalid value format carries the format",
			content: `
[[indicator]]
id = "status"
name = "Status"
value_format = "snake"
`,
			sentinel:  config.ErrInvalidValueFormat,
			key:       config.ValueFormatKey,
			wantValue: "snake",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			_, err := config.LoadAppConfiguration(path)
			gt.Error(t, err).Is(tt.sentinel)

			var ge *goerr.Error
			if !errors.As(err, &ge) {
				t.Fatalf("expected goerr.Error, got %T", err)
			}
			values := ge.Values()
			gt.Value(t, values[tt.key]).Equal(tt.wantValue)
			gt.Value(t, values[config.ConfigPathKey]).Equal(any(path))
		})
	}
}

func TestConfigErrors_AllSentinelErrorsAreDefined(t *testing.T) {
	// Verify all sentinel errors are non-nil and have messages
	sentinelErrors := []struct {
		name string
		err  error
	}{
		{"ErrConfigNotFound", config.ErrConfigNotFound},
		{"ErrInvalidConfig", config.ErrInvalidConfig},
		{"ErrDuplicateIndicatorID", config.ErrDuplicateIndicatorID},
		{"ErrInvalidIndicatorID", config.ErrInvalidIndicatorID},
		{"ErrMissingName", config.ErrMissingName},
		{"ErrMissingOptionValue", config.ErrMissingOptionValue},
		{"ErrDuplicateOptionValue", config.ErrDuplicateOptionValue},
		{"ErrEmptyOption", config.ErrEmptyOption},
		{"ErrInvalidColor", config.ErrInvalidColor},
		{"ErrInvalidValueFormat", config.ErrInvalidValueFormat},
		{"ErrConflictingHideRule", config.ErrConflictingHideRule},
		{"ErrInvalidHideRule", config.ErrInvalidHideRule},
	}

	for _, se := range sentinelErrors {
		t.Run(se.name, func(t *testing.T) {
			gt.Value(t, se.err).NotNil()
			gt.String(t, se.err.Error()).NotEqual("")
		})
	}
}
