package events

import (
	"context"
	"errors"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
)

// Dispatcher fans an event out to every sink. A failing sink does not stop
// the others.
type Dispatcher struct {
	sinks []repository.IEventPublisher
	now   func() time.Time
}

func NewDispatcher(sinks ...repository.IEventPublisher) *Dispatcher {
	d := &Dispatcher{now: time.Now}
	for _, sink := range sinks {
		if sink != nil {
			d.sinks = append(d.sinks, sink)
		}
	}
	return d
}

func (d *Dispatcher) Publish(ctx context.Context, event model.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.now().UTC()
	}
	var errs []error
	for _, sink := range d.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			logger.GetLogger().WithField("error", err).WithField("type", event.Type).Warn("Event sink failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
