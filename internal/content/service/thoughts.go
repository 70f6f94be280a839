package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"strata/internal/content/models"
)

type ThoughtStore interface {
	List(ctx context.Context) ([]models.Thought, error)
	Create(ctx context.Context, fields models.ThoughtFields) (*models.Thought, error)
	Update(ctx context.Context, id string, upd models.ThoughtUpdate) error
	Delete(ctx context.Context, id string) error
}

type ThoughtService struct {
	thoughts ThoughtStore
	deps
}

func NewThoughtService(thoughts ThoughtStore, opts ...Option) *ThoughtService {
	return &ThoughtService{thoughts: thoughts, deps: newDeps(opts)}
}

// List returns thoughts in storage order, or an empty slice.
func (s *ThoughtService) List(ctx context.Context) []models.Thought {
	ctx, o := s.begin(ctx, entityThought, "list")
	defer o.end()

	thoughts, err := s.thoughts.List(ctx)
	if err != nil {
		o.degrade(ctx, err)
		return []models.Thought{}
	}
	return thoughts
}

// Create stores a thought. A missing coordinate is drawn from the visible
// band before the insert so the stored position is never at the edge.
func (s *ThoughtService) Create(ctx context.Context, fields models.ThoughtFields) *models.Thought {
	if fields.X == nil || fields.Y == nil {
		x, y := models.RandomPosition(s.float01)
		if fields.X == nil {
			fields.X = &x
		}
		if fields.Y == nil {
			fields.Y = &y
		}
	}

	ctx, o := s.begin(ctx, entityThought, "create",
		attribute.Float64("x", *fields.X), attribute.Float64("y", *fields.Y))
	defer o.end()

	t, err := s.thoughts.Create(ctx, fields)
	if err != nil {
		o.degrade(ctx, err, "title", fields.Title)
		return nil
	}
	return t
}

// Update changes title and content only.
func (s *ThoughtService) Update(ctx context.Context, id string, upd models.ThoughtUpdate) bool {
	ctx, o := s.begin(ctx, entityThought, "update", attribute.String("thought_id", id))
	defer o.end()

	if err := s.thoughts.Update(ctx, id, upd); err != nil {
		o.degrade(ctx, err, "thought_id", id)
		return false
	}
	return true
}

// Delete removes a thought. Its comments are left in place.
func (s *ThoughtService) Delete(ctx context.Context, id string) bool {
	ctx, o := s.begin(ctx, entityThought, "delete", attribute.String("thought_id", id))
	defer o.end()

	if err := s.thoughts.Delete(ctx, id); err != nil {
		o.degrade(ctx, err, "thought_id", id)
		return false
	}
	return true
}
