package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"strata/internal/content/models"
)

// PageService assembles the page from the event and thought services.
type PageService struct {
	events   *EventService
	thoughts *ThoughtService
}

func NewPageService(events *EventService, thoughts *ThoughtService) *PageService {
	return &PageService{events: events, thoughts: thoughts}
}

// Snapshot loads events and thoughts concurrently. Either half degrades to
// empty on its own.
func (s *PageService) Snapshot(ctx context.Context) models.Page {
	var (
		events   []models.Event
		thoughts []models.Thought
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events = s.events.List(gctx)
		return nil
	})
	g.Go(func() error {
		thoughts = s.thoughts.List(gctx)
		return nil
	})
	_ = g.Wait()

	grouping := models.GroupTopLevel(events)
	return models.Page{
		Timeline:   grouping.Timeline(),
		Orphans:    grouping.Orphans(),
		Categories: models.GroupByCategory(events),
		Thoughts:   thoughts,
	}
}
