package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventRecordCreated = "record.created"
	EventRecordUpdated = "record.updated"
	EventRecordDeleted = "record.deleted"
)

// EventPublisher ships record change notifications to the message bus.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, data any) error
}

// RevisionCounter tracks how many writes a project's content has seen.
type RevisionCounter interface {
	Bump(ctx context.Context, projectID uuid.UUID) (int64, error)
	Current(ctx context.Context, projectID uuid.UUID) (int64, error)
}

type RecordEvent struct {
	Type       string         `json:"type"`
	ProjectID  uuid.UUID      `json:"projectId"`
	ModuleID   *uuid.UUID     `json:"moduleId"`
	ModuleSlug string         `json:"moduleSlug,omitempty"`
	DataType   string         `json:"dataType,omitempty"`
	RecordID   uuid.UUID      `json:"recordId"`
	Data       map[string]any `json:"data,omitempty"`
	At         time.Time      `json:"at"`
}

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, string, any) error { return nil }

type noopRevisions struct{}

func (noopRevisions) Bump(context.Context, uuid.UUID) (int64, error)    { return 0, nil }
func (noopRevisions) Current(context.Context, uuid.UUID) (int64, error) { return 0, nil }

// notifier runs the after-write side effects. Failures are logged and
// never reach the caller; the write has already committed.
type notifier struct {
	pub  EventPublisher
	revs RevisionCounter
	log  *zap.Logger
}

func newNotifier(pub EventPublisher, revs RevisionCounter, log *zap.Logger) *notifier {
	if pub == nil {
		pub = noopPublisher{}
	}
	if revs == nil {
		revs = noopRevisions{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &notifier{pub: pub, revs: revs, log: log}
}

func (n *notifier) recordChanged(ctx context.Context, ev RecordEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if err := n.pub.PublishJSON(ctx, ev.Type, ev); err != nil {
		n.log.Sugar().Warnw("publish record event failed", "type", ev.Type, "project_id", ev.ProjectID, "record_id", ev.RecordID, "err", err)
	}
	if _, err := n.revs.Bump(ctx, ev.ProjectID); err != nil {
		n.log.Sugar().Warnw("bump site revision failed", "project_id", ev.ProjectID, "err", err)
	}
}

func (n *notifier) revision(ctx context.Context, projectID uuid.UUID) int64 {
	rev, err := n.revs.Current(ctx, projectID)
	if err != nil {
		n.log.Sugar().Warnw("read site revision failed", "project_id", projectID, "err", err)
		return 0
	}
	return rev
}
