package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indicator/pkg/cli/config"
	"github.com/secmon-lab/indicator/pkg/domain/types"
	"github.com/secmon-lab/indicator/pkg/service/terminal"
	"github.com/secmon-lab/indicator/pkg/usecase"
	"github.com/secmon-lab/indicator/pkg/utils/logging"
	"github.com/secmon-lab/indicator/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var appCfg config.AppConfig
	var input string
	var output string
	var format string
	var noColor bool
	var indicatorIDs []string

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "JSON file holding an array of resource records ('-' for stdin)",
			Value:       "-",
			Sources:     cli.EnvVars("INDICATOR_INPUT"),
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file ('-' for stdout)",
			Value:       "-",
			Sources:     cli.EnvVars("INDICATOR_OUTPUT"),
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [text|json]",
			Value:       "text",
			Sources:     cli.EnvVars("INDICATOR_FORMAT"),
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored dots in text output",
			Sources:     cli.EnvVars("NO_COLOR"),
			Destination: &noColor,
		},
		&cli.StringSliceFlag{
			Name:        "indicator-id",
			Usage:       "Indicators to render (can be specified multiple times, omit for all)",
			Destination: &indicatorIDs,
		},
	)

	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Resolve indicators for resource records and render them",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			if format != "text" && format != "json" {
				return goerr.New("invalid output format", goerr.V("format", format))
			}

			set, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load indicator definitions")
			}

			records, err := readRecords(ctx, input)
			if err != nil {
				return err
			}

			var ids []types.IndicatorID
			for _, id := range indicatorIDs {
				ids = append(ids, types.IndicatorID(id))
			}

			uc := usecase.New(set)
			rows, err := uc.Render.Execute(ctx, usecase.RenderInput{
				Records:      records,
				IndicatorIDs: ids,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to render records")
			}

			w, closeOutput, err := openOutput(ctx, output)
			if err != nil {
				return err
			}
			defer closeOutput()

			switch format {
			case "json":
				err = writeJSON(w, rows)
			default:
				var opts []terminal.Option
				if noColor {
					opts = append(opts, terminal.WithColor(false))
				}
				err = writeText(w, rows, terminal.New(opts...))
			}
			if err != nil {
				return err
			}

			logger.Info("Render completed",
				"record_count", len(rows),
				"indicator_count", set.Len(),
				"format", format,
			)
			return nil
		},
	}
}

func readRecords(ctx context.Context, path string) ([]usecase.Record, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		// #nosec G304 - path is expected to be provided by CLI argument
		f, err := os.Open(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open input", goerr.V("path", path))
		}
		defer safe.Close(ctx, f, "path", path)
		r = f
	}

	var records []usecase.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, goerr.Wrap(err, "failed to decode records", goerr.V("path", path))
	}
	return records, nil
}

func openOutput(ctx context.Context, path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output", goerr.V("path", path))
	}
	return f, func() { safe.Close(ctx, f, "path", path) }, nil
}

func writeJSON(w io.Writer, rows []usecase.Row) error {
	out := make([][]map[string]any, len(rows))
	for i, row := range rows {
		out[i] = make([]map[string]any, len(row.Cells))
		for j, cell := range row.Cells {
			out[i][j] = cell.Payload()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to encode rows")
	}
	return nil
}

func writeText(w io.Writer, rows []usecase.Row, painter *terminal.Painter) error {
	for _, row := range rows {
		var parts []string
		for _, cell := range row.Cells {
			painted := painter.Paint(cell.Display, cell.LabelsHidden())
			if painted == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", cell.IndicatorID, painted))
		}
		if _, err := fmt.Fprintf(w, "#%d\t%s\n", row.Index, strings.Join(parts, "\t")); err != nil {
			return goerr.Wrap(err, "failed to write row")
		}
	}
	return nil
}
