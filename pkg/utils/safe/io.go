package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/indicator/pkg/utils/logging"
)

// Close closes closer and logs a failure with the given attributes. A nil
// closer is ignored.
func Close(ctx context.Context, closer io.Closer, attrs ...any) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		args := append([]any{slog.Any("error", err)}, attrs...)
		logging.From(ctx).Error("Failed to close", args...)
	}
}
