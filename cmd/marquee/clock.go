package main

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/time/rate"

	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/views"
)

const clockID = "clock"

// runClock posts the current time into the clock view once per interval
// until ctx ends or the sink closes. It runs off the loop goroutine and
// only touches views through the sink.
func runClock(ctx context.Context, sink *runtime.Sink, interval time.Duration, now func() time.Time) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}
		stamp := now().Format("15:04:05")
		err := sink.Send(func(app *runtime.App) {
			app.CallOnID(clockID, func(v runtime.View) {
				if tv, ok := v.(*views.TextView); ok {
					tv.SetContent(stamp)
				}
			})
		})
		if stderrors.Is(err, runtime.ErrSinkClosed) {
			return nil
		}
	}
}
