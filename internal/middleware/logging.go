// Package middleware decorates a service.Splitter with cross-cutting behavior.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/flatmates/internal/models"
	"github.com/mmynk/flatmates/internal/service"
)

// Logging returns a Splitter that logs every split with its duration.
// Input and state errors are the user's to fix and are logged as warnings;
// anything else is logged as an error.
func Logging(next service.Splitter) service.Splitter {
	return service.SplitterFunc(func(ctx context.Context, req service.SplitRequest) (*service.SplitResult, error) {
		start := time.Now()

		result, err := next.Split(ctx, req)

		duration := time.Since(start).Milliseconds()
		if err != nil {
			if errors.Is(err, models.ErrInvalidInput) || errors.Is(err, models.ErrInvalidState) {
				slog.Warn("Split rejected",
					"period", req.Period,
					"error", err,
					"duration_ms", duration,
				)
			} else {
				slog.Error("Split failed",
					"period", req.Period,
					"error", err,
					"duration_ms", duration,
				)
			}
		} else {
			slog.Info("Split ok",
				"period", req.Period,
				"report", result.ReportPath,
				"duration_ms", duration,
			)
		}

		return result, err
	})
}
