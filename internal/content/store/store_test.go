package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"strata/internal/content/models"
	"strata/internal/rowstore"
	"strata/internal/rowstore/memory"
)

type StoreSuite struct {
	suite.Suite
	ctx      context.Context
	gw       *memory.Gateway
	events   *EventStore
	thoughts *ThoughtStore
	comments *CommentStore
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seq := 0
	s.gw = memory.New(
		memory.WithClock(func() time.Time {
			now = now.Add(time.Minute)
			return now
		}),
		memory.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	s.events = NewEventStore(s.gw)
	s.thoughts = NewThoughtStore(s.gw)
	s.comments = NewCommentStore(s.gw)
}

func (s *StoreSuite) createEvent(title string, year int, parent *string) *models.Event {
	e, err := s.events.Create(s.ctx, models.EventFields{
		Title: title, StartYear: year, Category: models.CategoryExploration, ParentID: parent,
	})
	s.Require().NoError(err)
	return e
}

func (s *StoreSuite) TestEventsListedByStartYear() {
	s.createEvent("late", 2021, nil)
	s.createEvent("early", 2001, nil)
	s.createEvent("middle", 2010, nil)

	list, err := s.events.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("early", list[0].Title)
	s.Equal("middle", list[1].Title)
	s.Equal("late", list[2].Title)
}

func (s *StoreSuite) TestEventCreateRoundTrip() {
	summary := "one line"
	end := 2020
	e, err := s.events.Create(s.ctx, models.EventFields{
		Title:     "Band",
		StartYear: 2018,
		EndYear:   &end,
		Summary:   &summary,
		Category:  models.CategoryCreative,
		Images:    []string{"a.jpg"},
	})
	s.Require().NoError(err)
	s.Equal("id-1", e.ID)
	s.Equal(time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC), e.CreatedAt.UTC())
	s.Equal("2018-2020", e.YearRange())
	s.Equal([]string{"a.jpg"}, e.Images)
	s.True(e.IsTopLevel())
}

func (s *StoreSuite) TestEventUpdateIsPartial() {
	e := s.createEvent("draft", 2015, nil)
	title := "final"
	s.Require().NoError(s.events.Update(s.ctx, e.ID, models.EventUpdate{Title: &title}))

	list, err := s.events.List(s.ctx)
	s.Require().NoError(err)
	s.Equal("final", list[0].Title)
	s.Equal(2015, list[0].StartYear)
}

func (s *StoreSuite) TestEventDeleteOrphansChildren() {
	parent := s.createEvent("parent", 2000, nil)
	s.createEvent("child", 2001, &parent.ID)

	s.Require().NoError(s.events.Delete(s.ctx, parent.ID))

	list, err := s.events.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(parent.ID, *list[0].ParentID)
}

func (s *StoreSuite) TestThoughtPositionOptional() {
	x, y := 25.0, 75.0
	placed, err := s.thoughts.Create(s.ctx, models.ThoughtFields{Title: "a", Content: "b", X: &x, Y: &y})
	s.Require().NoError(err)
	s.True(placed.HasPosition())

	loose, err := s.thoughts.Create(s.ctx, models.ThoughtFields{Title: "c", Content: "d"})
	s.Require().NoError(err)
	s.False(loose.HasPosition())
}

func (s *StoreSuite) TestThoughtUpdateKeepsPosition() {
	x, y := 40.0, 60.0
	th, err := s.thoughts.Create(s.ctx, models.ThoughtFields{Title: "a", Content: "b", X: &x, Y: &y})
	s.Require().NoError(err)

	content := "revised"
	s.Require().NoError(s.thoughts.Update(s.ctx, th.ID, models.ThoughtUpdate{Content: &content}))

	list, err := s.thoughts.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("revised", list[0].Content)
	s.Equal(40.0, *list[0].X)
}

func (s *StoreSuite) TestCommentsPublicViewAndOrder() {
	first, err := s.comments.Create(s.ctx, mustSubmission(s, "t-1", "first"))
	s.Require().NoError(err)
	_, err = s.comments.Create(s.ctx, mustSubmission(s, "t-1", "second"))
	s.Require().NoError(err)
	third, err := s.comments.Create(s.ctx, mustSubmission(s, "t-1", "third"))
	s.Require().NoError(err)
	_, err = s.comments.Create(s.ctx, mustSubmission(s, "t-2", "other"))
	s.Require().NoError(err)

	s.Require().NoError(s.comments.Approve(s.ctx, first.ID))
	s.Require().NoError(s.comments.Approve(s.ctx, third.ID))

	public, err := s.comments.ListByThought(s.ctx, "t-1", true)
	s.Require().NoError(err)
	s.Equal([]string{"third", "first"}, contents(public))

	all, err := s.comments.ListByThought(s.ctx, "t-1", false)
	s.Require().NoError(err)
	s.Equal([]string{"third", "second", "first"}, contents(all))
}

func (s *StoreSuite) TestApproveAndDeleteMissingSucceed() {
	s.NoError(s.comments.Approve(s.ctx, "nope"))
	s.NoError(s.comments.Delete(s.ctx, "nope"))
}

func (s *StoreSuite) TestUnconfiguredGatewayFails() {
	events := NewEventStore(rowstore.Unconfigured{})
	_, err := events.List(s.ctx)
	s.True(errors.Is(err, rowstore.ErrNotConfigured))
}

func mustSubmission(s *StoreSuite, thoughtID, content string) models.CommentSubmission {
	sub, err := models.NewSubmission(thoughtID, content, "")
	s.Require().NoError(err)
	return sub
}

func contents(comments []models.Comment) []string {
	out := make([]string, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.Content)
	}
	return out
}
