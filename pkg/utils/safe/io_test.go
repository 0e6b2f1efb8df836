package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indicator/pkg/utils/logging"
	"github.com/secmon-lab/indicator/pkg/utils/safe"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	t.Run("nil closer", func(t *testing.T) {
		safe.Close(ctx, nil)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("failure is logged with attributes", func(t *testing.T) {
		safe.Close(ctx, closerFunc(func() error { return errors.New("disk full") }), "path", "out.json")
		gt.String(t, buf.String()).Contains("disk full")
		gt.String(t, buf.String()).Contains("out.json")
	})

	t.Run("success logs nothing", func(t *testing.T) {
		buf.Reset()
		closed := false
		safe.Close(ctx, closerFunc(func() error { closed = true; return nil }))
		gt.Bool(t, closed).True()
		gt.Value(t, buf.Len()).Equal(0)
	})
}
