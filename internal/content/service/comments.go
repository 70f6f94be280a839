package service

import (
	"context"
	"strings"

	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel/attribute"

	"strata/internal/content/models"
	"strata/pkg/requestcontext"
)

type CommentStore interface {
	ListByThought(ctx context.Context, thoughtID string, publicOnly bool) ([]models.Comment, error)
	Create(ctx context.Context, sub models.CommentSubmission) (*models.Comment, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// CommentService runs the moderation workflow:
// submit -> pending -> (approve) -> public, delete from either state.
type CommentService struct {
	comments CommentStore
	deps
}

func NewCommentService(comments CommentStore, opts ...Option) *CommentService {
	return &CommentService{comments: comments, deps: newDeps(opts)}
}

// ListPublic is the visitor view: approved comments, newest first.
func (s *CommentService) ListPublic(ctx context.Context, thoughtID string) []models.Comment {
	return s.list(ctx, thoughtID, true)
}

// ListAll is the moderator view including pending comments.
func (s *CommentService) ListAll(ctx context.Context, thoughtID string) []models.Comment {
	return s.list(ctx, thoughtID, false)
}

func (s *CommentService) list(ctx context.Context, thoughtID string, publicOnly bool) []models.Comment {
	name := "list_all"
	if publicOnly {
		name = "list_public"
	}
	ctx, o := s.begin(ctx, entityComment, name, attribute.String("thought_id", thoughtID))
	defer o.end()

	comments, err := s.comments.ListByThought(ctx, thoughtID, publicOnly)
	if err != nil {
		o.degrade(ctx, err, "thought_id", thoughtID)
		return []models.Comment{}
	}
	return comments
}

// Submit stores a pending comment and returns it, or nil. Blank content is
// refused without touching storage; is_public is forced false whatever the
// caller passed.
func (s *CommentService) Submit(ctx context.Context, sub models.CommentSubmission) *models.Comment {
	if strings.TrimSpace(sub.Content) == "" || strings.TrimSpace(sub.ThoughtID) == "" {
		s.metrics.IncrementCommentRejected()
		s.logger.WarnContext(ctx, "comment submission rejected",
			"request_id", requestcontext.RequestID(ctx),
			"thought_id", sub.ThoughtID,
		)
		return nil
	}
	sub.IsPublic = false

	ctx, o := s.begin(ctx, entityComment, "submit", attribute.String("thought_id", sub.ThoughtID))
	defer o.end()

	ua := useragent.New(requestcontext.UserAgent(ctx))
	browser, _ := ua.Browser()

	c, err := s.comments.Create(ctx, sub)
	if err != nil {
		o.degrade(ctx, err, "thought_id", sub.ThoughtID)
		return nil
	}
	s.metrics.IncrementCommentSubmitted()
	s.metrics.IncrementSubmissionClient(browser, ua.Mobile())
	s.logger.InfoContext(ctx, "comment submitted for moderation",
		"request_id", requestcontext.RequestID(ctx),
		"comment_id", c.ID,
		"thought_id", c.ThoughtID,
		"client_ip", requestcontext.ClientIP(ctx),
		"browser", browser,
		"mobile", ua.Mobile(),
		"bot", ua.Bot(),
	)
	return c
}

// Approve makes a comment public. Approving twice succeeds twice.
func (s *CommentService) Approve(ctx context.Context, id string) bool {
	ctx, o := s.begin(ctx, entityComment, "approve", attribute.String("comment_id", id))
	defer o.end()

	if err := s.comments.Approve(ctx, id); err != nil {
		o.degrade(ctx, err, "comment_id", id)
		return false
	}
	s.metrics.IncrementCommentApproved()
	return true
}

// Delete removes a comment in either state.
func (s *CommentService) Delete(ctx context.Context, id string) bool {
	ctx, o := s.begin(ctx, entityComment, "delete", attribute.String("comment_id", id))
	defer o.end()

	if err := s.comments.Delete(ctx, id); err != nil {
		o.degrade(ctx, err, "comment_id", id)
		return false
	}
	return true
}
