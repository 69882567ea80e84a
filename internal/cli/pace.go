package cli

import (
	"context"
	"time"

	apperrors "github.com/agbru/drills/internal/errors"
)

// Pace blocks for d, animating sp (when non-nil) with suffix while waiting.
// It returns early with a wrapped context error if ctx is done first.
// A non-positive d returns immediately.
func Pace(ctx context.Context, d time.Duration, sp Spinner, suffix string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.WrapError(err, "pacing interrupted")
	}
	if d <= 0 {
		return nil
	}

	if sp != nil {
		sp.UpdateSuffix(suffix)
		sp.Start()
		defer sp.Stop()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return apperrors.WrapError(ctx.Err(), "pacing interrupted")
	case <-timer.C:
		return nil
	}
}
