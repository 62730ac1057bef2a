package metrics

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type snapshot struct {
	received int64
	rejected int64
	inFlight int64
}

func (rec *Recorder) snapshot() snapshot {
	return snapshot{
		received: rec.received.Load(),
		rejected: rec.rejected.Load(),
		inFlight: rec.inFlightCount.Load(),
	}
}

// Report logs a traffic summary every interval, skipping ticks where nothing
// changed. It returns when ctx is done.
func (rec *Recorder) Report(ctx context.Context, interval time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last snapshot
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := rec.snapshot()
			if current == last {
				continue
			}
			log.Infof("Received: %d | Rejected: %d | In flight: %d",
				current.received, current.rejected, current.inFlight)
			last = current
		}
	}
}
