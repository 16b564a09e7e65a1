package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kataras/go-events"
	log "github.com/sirupsen/logrus"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventpubsub"
)

// TimeEventTopic is the go-events topic timer firings are emitted on.
const TimeEventTopic events.EventName = "TimeEvent"

// RunTimer emits a TimeEvent with the given label every interval until the
// context is cancelled. Each firing goes to both the go-events emitter and
// the application event bus.
func RunTimer(ctx context.Context, label string, interval time.Duration, clk clock.Clock, emitter events.EventEmmiter) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infof("timer %s started, interval %s", label, interval)

	for {
		select {
		case <-ctx.Done():
			log.Infof("timer %s stopped", label)
			return
		case <-ticker.C:
			ev, err := eventmodels.NewTimeEvent(uuid.New(), label, clk.Now())
			if err != nil {
				eventpubsub.PublishError("worker.RunTimer", err)
				continue
			}

			emitter.Emit(TimeEventTopic, ev)
			eventpubsub.Publish(eventpubsub.TimeEventFired, ev)
		}
	}
}
