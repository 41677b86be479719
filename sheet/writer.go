package sheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

// ErrRateLimited is returned (wrapped) by Writer.Update when a cell update
// has been abandoned after exhausting the retry budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// CellUpdater is the remote API surface the Writer needs - a Worksheet in
// production, a fake in tests.
type CellUpdater interface {
	UpdateCell(ctx context.Context, row, col int, value any) error
}

// Retry bounds the exponential backoff applied to rate-limited cell updates.
// The wait before attempt N is Base << N.
type Retry struct {
	MaxAttempts uint
	Base        time.Duration
}

var DefaultRetry = Retry{
	MaxAttempts: 7,
	Base:        1 * time.Second,
}

// Writer updates single cells, retrying on rate limiting with bounded
// exponential backoff. Any other remote error is returned immediately.
type Writer struct {
	updater CellUpdater
	retry   Retry
	warnf   func(format string, args ...any)
	sleep   func(time.Duration)
}

func NewWriter(updater CellUpdater, retry Retry, warnf func(format string, args ...any)) *Writer {
	if retry.MaxAttempts == 0 {
		retry.MaxAttempts = DefaultRetry.MaxAttempts
	}

	if retry.Base == 0 {
		retry.Base = DefaultRetry.Base
	}

	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	return &Writer{
		updater: updater,
		retry:   retry,
		warnf:   warnf,
		sleep:   time.Sleep,
	}
}

// Update writes a single cell value. On a 'too many requests' response the
// update is retried with exponential backoff; after MaxAttempts failed
// attempts the update is abandoned and the returned error wraps
// ErrRateLimited.
func (w *Writer) Update(ctx context.Context, row, col int, value any) error {
	var err error

	for attempt := uint(1); attempt <= w.retry.MaxAttempts; attempt++ {
		if err = w.updater.UpdateCell(ctx, row, col, value); err == nil {
			return nil
		}

		if !rateLimited(err) {
			return err
		}

		wait := w.retry.Base << attempt
		w.warnf("Rate limit hit - retrying in %v (%v/%v)", wait, attempt, w.retry.MaxAttempts)
		w.sleep(wait)
	}

	return fmt.Errorf("update of cell %s%d abandoned after %d attempts (%w)", ColumnName(col), row, w.retry.MaxAttempts, ErrRateLimited)
}

func rateLimited(err error) bool {
	var apierr *googleapi.Error

	return errors.As(err, &apierr) && apierr.Code == http.StatusTooManyRequests
}
