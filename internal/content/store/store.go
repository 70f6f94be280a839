// Package store maps the content entities onto rowstore tables. Stores
// return errors; degrading them is the service layer's job.
package store

import (
	"context"
	"fmt"

	"strata/internal/content/models"
	"strata/internal/rowstore"
)

const (
	colStartYear = "start_year"
	colThoughtID = "thought_id"
	colIsPublic  = "is_public"
)

func insertAs[T any](ctx context.Context, gw rowstore.Gateway, table string, fields any) (*T, error) {
	row, err := rowstore.Encode(fields)
	if err != nil {
		return nil, err
	}
	created, err := gw.Insert(ctx, table, row)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}
	out, err := rowstore.Decode[T](created)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func selectAs[T any](ctx context.Context, gw rowstore.Gateway, table string, q rowstore.Query) ([]T, error) {
	rows, err := gw.Select(ctx, table, q)
	if err != nil {
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	return rowstore.DecodeAll[T](rows)
}

func update(ctx context.Context, gw rowstore.Gateway, table, id string, fields any) error {
	row, err := rowstore.Encode(fields)
	if err != nil {
		return err
	}
	if err := gw.Update(ctx, table, id, row); err != nil {
		return fmt.Errorf("update %s %s: %w", table, id, err)
	}
	return nil
}

func remove(ctx context.Context, gw rowstore.Gateway, table, id string) error {
	if err := gw.Delete(ctx, table, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", table, id, err)
	}
	return nil
}

// EventStore persists Events.
type EventStore struct {
	gw rowstore.Gateway
}

func NewEventStore(gw rowstore.Gateway) *EventStore {
	return &EventStore{gw: gw}
}

// List returns every event ascending by start year.
func (s *EventStore) List(ctx context.Context) ([]models.Event, error) {
	return selectAs[models.Event](ctx, s.gw, rowstore.TableEvents, rowstore.Query{
		Order: []rowstore.Order{rowstore.Asc(colStartYear)},
	})
}

func (s *EventStore) Create(ctx context.Context, fields models.EventFields) (*models.Event, error) {
	return insertAs[models.Event](ctx, s.gw, rowstore.TableEvents, fields)
}

func (s *EventStore) Update(ctx context.Context, id string, upd models.EventUpdate) error {
	return update(ctx, s.gw, rowstore.TableEvents, id, upd)
}

// Delete removes one event. Children are left with a dangling parent id.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.gw, rowstore.TableEvents, id)
}

// ThoughtStore persists Thoughts.
type ThoughtStore struct {
	gw rowstore.Gateway
}

func NewThoughtStore(gw rowstore.Gateway) *ThoughtStore {
	return &ThoughtStore{gw: gw}
}

// List returns thoughts in storage order.
func (s *ThoughtStore) List(ctx context.Context) ([]models.Thought, error) {
	return selectAs[models.Thought](ctx, s.gw, rowstore.TableThoughts, rowstore.Query{})
}

func (s *ThoughtStore) Create(ctx context.Context, fields models.ThoughtFields) (*models.Thought, error) {
	return insertAs[models.Thought](ctx, s.gw, rowstore.TableThoughts, fields)
}

func (s *ThoughtStore) Update(ctx context.Context, id string, upd models.ThoughtUpdate) error {
	return update(ctx, s.gw, rowstore.TableThoughts, id, upd)
}

func (s *ThoughtStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.gw, rowstore.TableThoughts, id)
}

// CommentStore persists Comments.
type CommentStore struct {
	gw rowstore.Gateway
}

func NewCommentStore(gw rowstore.Gateway) *CommentStore {
	return &CommentStore{gw: gw}
}

// ListByThought returns a thought's comments newest first. publicOnly
// restricts the result to approved comments.
func (s *CommentStore) ListByThought(ctx context.Context, thoughtID string, publicOnly bool) ([]models.Comment, error) {
	q := rowstore.Query{
		Filters: []rowstore.Filter{rowstore.Eq(colThoughtID, thoughtID)},
		Order:   []rowstore.Order{rowstore.Desc(rowstore.ColumnCreatedAt)},
	}
	if publicOnly {
		q.Filters = append(q.Filters, rowstore.Eq(colIsPublic, true))
	}
	return selectAs[models.Comment](ctx, s.gw, rowstore.TableComments, q)
}

func (s *CommentStore) Create(ctx context.Context, sub models.CommentSubmission) (*models.Comment, error) {
	return insertAs[models.Comment](ctx, s.gw, rowstore.TableComments, sub)
}

// Approve sets is_public. Approving a public or missing comment succeeds.
func (s *CommentStore) Approve(ctx context.Context, id string) error {
	if err := s.gw.Update(ctx, rowstore.TableComments, id, rowstore.Row{colIsPublic: true}); err != nil {
		return fmt.Errorf("approve comment %s: %w", id, err)
	}
	return nil
}

func (s *CommentStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.gw, rowstore.TableComments, id)
}
