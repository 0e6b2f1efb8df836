package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indicator/pkg/cli/config"
	"github.com/secmon-lab/indicator/pkg/utils/logging"
)

type credential struct {
	Token string `masq:"secret"`
}

func TestLogger_Configure(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	t.Run("json output to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "indicator.log")
		cfg := config.NewLoggerForTest("debug", "json", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Debug("resolved indicator",
			"indicator_id", "status",
			"credential", credential{Token: "s3cr3t"},
		)
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains(`"indicator_id":"status"`)
		gt.Bool(t, strings.Contains(string(data), "s3cr3t")).False()
	})

	t.Run("console output", func(t *testing.T) {
		cfg := config.NewLoggerForTest("warn", "console", "stderr")
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "stderr")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stderr")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("returns flags", func(t *testing.T) {
		var cfg config.Logger
		gt.Value(t, len(cfg.Flags())).Equal(3)
	})
}
