package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"strata/internal/content/models"
)

type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, fields models.EventFields) (*models.Event, error)
	Update(ctx context.Context, id string, upd models.EventUpdate) error
	Delete(ctx context.Context, id string) error
}

// EventService holds no cache; callers re-fetch after mutating.
type EventService struct {
	events EventStore
	deps
}

func NewEventService(events EventStore, opts ...Option) *EventService {
	return &EventService{events: events, deps: newDeps(opts)}
}

// List returns all events ascending by start year, or an empty slice.
func (s *EventService) List(ctx context.Context) []models.Event {
	ctx, o := s.begin(ctx, entityEvent, "list")
	defer o.end()

	events, err := s.events.List(ctx)
	if err != nil {
		o.degrade(ctx, err)
		return []models.Event{}
	}
	return events
}

// Grouped lists and groups events into top-level entries and children.
func (s *EventService) Grouped(ctx context.Context) models.Grouping {
	return models.GroupTopLevel(s.List(ctx))
}

// ByCategory lists events bucketed by value circle.
func (s *EventService) ByCategory(ctx context.Context) []models.CategoryGroup {
	return models.GroupByCategory(s.List(ctx))
}

// Create returns the stored event or nil.
func (s *EventService) Create(ctx context.Context, fields models.EventFields) *models.Event {
	ctx, o := s.begin(ctx, entityEvent, "create", attribute.String("category", fields.Category.String()))
	defer o.end()

	e, err := s.events.Create(ctx, fields)
	if err != nil {
		o.degrade(ctx, err, "title", fields.Title)
		return nil
	}
	return e
}

func (s *EventService) Update(ctx context.Context, id string, upd models.EventUpdate) bool {
	ctx, o := s.begin(ctx, entityEvent, "update", attribute.String("event_id", id))
	defer o.end()

	if err := s.events.Update(ctx, id, upd); err != nil {
		o.degrade(ctx, err, "event_id", id)
		return false
	}
	return true
}

// Delete removes one event. Its children keep their parent id.
func (s *EventService) Delete(ctx context.Context, id string) bool {
	ctx, o := s.begin(ctx, entityEvent, "delete", attribute.String("event_id", id))
	defer o.end()

	if err := s.events.Delete(ctx, id); err != nil {
		o.degrade(ctx, err, "event_id", id)
		return false
	}
	return true
}
