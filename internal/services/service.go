package services

import (
	"context"
	"errors"
	"io"
	"time"

	"solidarmap/internal/monitoring"
	"solidarmap/internal/repositories"
	"solidarmap/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// EventPublisher receives a change event after every committed write.
type EventPublisher interface {
	PublishEvent(event rabbitmq.Event) error
}

// Deps carries the collaborators shared by every service. Zero fields get defaults:
// a silent logger, no events, no metrics and the wall clock.
type Deps struct {
	Log     *logrus.Logger
	Events  EventPublisher
	Metrics *monitoring.Metrics
	Now     func() time.Time
}

const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

type base struct {
	log     *logrus.Logger
	events  EventPublisher
	metrics *monitoring.Metrics
	now     func() time.Time
	// entity names the type in error messages, resource names it in events and metrics.
	entity   string
	resource string
}

func newBase(deps Deps, entity, resource string) base {
	b := base{
		log:      deps.Log,
		events:   deps.Events,
		metrics:  deps.Metrics,
		now:      deps.Now,
		entity:   entity,
		resource: resource,
	}
	if b.log == nil {
		b.log = logrus.New()
		b.log.SetOutput(io.Discard)
	}
	if b.now == nil {
		b.now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return b
}

// translate maps a repository error to NotFoundError or StorageError.
func (b base) translate(op string, id int, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(b.entity, id)
	}
	return &StorageError{Op: op, Err: err}
}

// readFailure maps a repository error on a read path.
func (b base) readFailure(id int, err error) error {
	err = b.translate("read", id, err)
	var se *StorageError
	if errors.As(err, &se) {
		b.log.WithError(err).WithField("entity", b.resource).Error("read failed")
	}
	return err
}

// fail records a rejected or failed write and returns err unchanged.
func (b base) fail(action string, id int, err error) error {
	result := outcome(err)
	b.metrics.RecordWrite(b.resource, action, result)
	entry := b.log.WithError(err).WithFields(logrus.Fields{"entity": b.resource, "id": id, "action": action})
	if result == "storage_failure" {
		entry.Error("write failed")
	} else {
		entry.Info("write rejected")
	}
	return err
}

// committed records a successful write and publishes its change event.
func (b base) committed(action string, id int) {
	b.metrics.RecordWrite(b.resource, action, "ok")
	b.log.WithFields(logrus.Fields{"entity": b.resource, "id": id, "action": action}).Info("entity written")
	if b.events == nil {
		return
	}
	if err := b.events.PublishEvent(rabbitmq.NewEvent(b.resource, action, id)); err != nil {
		b.log.WithError(err).WithFields(logrus.Fields{"entity": b.resource, "id": id}).Warn("failed to publish change event")
	}
}

// reload re-reads a freshly written row so its display fields are resolved. When the
// read fails the written entity is returned as is, with empty display fields.
func reload[T any](ctx context.Context, b base, repo repositories.Repository[T], id int, written *T) *T {
	stored, err := repo.GetByID(ctx, id)
	if err != nil {
		b.log.WithError(err).WithFields(logrus.Fields{"entity": b.resource, "id": id}).Warn("could not reload written entity")
		return written
	}
	return stored
}
