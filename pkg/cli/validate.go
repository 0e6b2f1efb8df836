package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indicator/pkg/cli/config"
	"github.com/secmon-lab/indicator/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.AppConfig

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate indicator definition files",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			set, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"indicator_count", set.Len(),
			)
			for _, def := range set.Definitions {
				label, hasUnknown := def.Field.UnknownLabel()
				logger.Info("Indicator validated",
					"id", def.ID,
					"name", def.Field.Name(),
					"attribute", def.Field.Attribute(),
					"hide_rule", def.Field.HideRule().Kind(),
					"use_values", def.Field.UsesValues(),
					"without_labels", def.Field.LabelsHidden(),
					"has_unknown_label", hasUnknown,
					"unknown_label", label,
				)
			}

			return nil
		},
	}
}
