package match

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// callSupervised runs fn to completion in a separate goroutine managed
// by an errgroup.Group, recovering any panic into an error so a driver
// never dies because a player's step implementation misbehaves.
//
// If timeout is positive, a context.WithDeadline bounds how long
// callSupervised waits; once it expires, callSupervised reports
// completed=false without killing the goroutine (Go gives no such
// primitive) and simply abandons it to finish or panic on its own time.
// This is the supervision boundary EXPANSION 5.1 calls for in place of
// original_source/shared/killable_thread.py's KillableThread: instead of
// hard termination, the driver reads back a player's last committed
// move (player.Cops.LastMove / player.Robber.LastMove) and moves on.
func callSupervised[T any](timeout time.Duration, fn func() T) (result T, completed bool, panicked bool) {
	ctx := context.Background()
	cancel := func() {}
	if timeout > 0 {
		ctx, cancel = context.WithDeadline(ctx, time.Now().Add(timeout))
	}
	defer cancel()

	done := make(chan T, 1)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("match: player call panicked: %v", r)
			}
		}()
		done <- fn()
		return nil
	})

	waited := make(chan error, 1)
	go func() { waited <- g.Wait() }()

	select {
	case err := <-waited:
		if err != nil {
			return result, true, true
		}
		return <-done, true, false
	case <-ctx.Done():
		return result, false, false
	}
}
