package models

import (
	"strings"
	"time"

	dErrors "strata/pkg/domain-errors"
)

// AnonymousAuthor is shown for comments submitted without a name.
const AnonymousAuthor = "Anonymous"

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusPending CommentStatus = "pending"
	CommentStatusPublic  CommentStatus = "public"
)

// Comment is a visitor reply to a Thought.
//
// Invariants:
//   - a new comment is always pending (IsPublic false)
//   - pending -> public via approval only; there is no way back
//   - either state may be deleted
type Comment struct {
	ID        string    `json:"id"`
	ThoughtID string    `json:"thought_id"`
	Content   string    `json:"content"`
	Author    *string   `json:"author,omitempty"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Comment) Status() CommentStatus {
	if c.IsPublic {
		return CommentStatusPublic
	}
	return CommentStatusPending
}

// DisplayAuthor returns the author name or AnonymousAuthor.
func (c Comment) DisplayAuthor() string {
	if c.Author == nil || strings.TrimSpace(*c.Author) == "" {
		return AnonymousAuthor
	}
	return *c.Author
}

// CommentSubmission is the insert shape of a new comment.
type CommentSubmission struct {
	ThoughtID string `json:"thought_id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	IsPublic  bool   `json:"is_public"`
}

// NewSubmission validates and normalises a visitor's comment. Content is
// trimmed and must not be blank; a blank author becomes AnonymousAuthor. The
// result is always pending regardless of who submits it.
func NewSubmission(thoughtID, content, author string) (CommentSubmission, error) {
	thoughtID = strings.TrimSpace(thoughtID)
	if thoughtID == "" {
		return CommentSubmission{}, dErrors.New(dErrors.CodeValidation, "thought id is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return CommentSubmission{}, dErrors.New(dErrors.CodeValidation, "comment content cannot be empty")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = AnonymousAuthor
	}
	return CommentSubmission{
		ThoughtID: thoughtID,
		Content:   content,
		Author:    author,
		IsPublic:  false,
	}, nil
}
