package mapper

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
)

// refreshTimeout bounds a single background reload.
const refreshTimeout = 5 * time.Minute

// AutoRefreshOn implements Mapper. Each tick reloads the dataset under
// its own timeout; failures are logged and the ticker keeps going, so
// a transient upstream outage never kills refreshing.
func (c *client) AutoRefreshOn() error {
	if c.options.refreshInterval <= 0 {
		return &errors.ValidationError{
			Field:   "refreshInterval",
			Value:   c.options.refreshInterval.String(),
			Message: "refresh interval must be positive",
		}
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Stop any running refresher to prevent ticker leaks.
	c.stopRefreshLocked()

	c.stopCh = make(chan struct{})
	c.refreshTicker = time.NewTicker(c.options.refreshInterval)

	ctx, cancel := context.WithCancel(context.Background())
	c.refreshCancel = cancel

	go func(parentCtx context.Context, ticker *time.Ticker, stopCh chan struct{}) {
		for {
			select {
			case <-ticker.C:
				refreshCtx, refreshCancel := context.WithTimeout(parentCtx, refreshTimeout)
				err := c.Load(refreshCtx)
				refreshCancel()

				if err != nil {
					if stderrors.Is(err, context.Canceled) {
						return
					}
					c.logger.Error().Err(err).Msg("auto-refresh failed")
				}
			case <-parentCtx.Done():
				return
			case <-stopCh:
				return
			}
		}
	}(ctx, c.refreshTicker, c.stopCh)

	return nil
}

// AutoRefreshOff implements Mapper.
func (c *client) AutoRefreshOff() error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	c.stopRefreshLocked()
	return nil
}

func (c *client) stopRefreshLocked() {
	if c.refreshTicker != nil {
		c.refreshTicker.Stop()
		c.refreshTicker = nil
	}
	if c.refreshCancel != nil {
		c.refreshCancel()
		c.refreshCancel = nil
	}
	if c.stopCh != nil {
		select {
		case <-c.stopCh:
			// already closed
		default:
			close(c.stopCh)
		}
		c.stopCh = nil
	}
}
