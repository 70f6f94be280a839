package models

import (
	"strconv"
	"time"
)

// Event is a timeline entry. ParentID references another Event; the
// reference is not enforced and may dangle after the parent is deleted.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     *string   `json:"summary,omitempty"`
	StartYear   int       `json:"start_year"`
	EndYear     *int      `json:"end_year,omitempty"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images,omitempty"`
	PDFURL      *string   `json:"pdf_url,omitempty"`
	ParentID    *string   `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsTopLevel reports whether the event has no parent. An empty parent id
// counts as absent.
func (e Event) IsTopLevel() bool {
	return e.ParentID == nil || *e.ParentID == ""
}

// YearRange renders the event's span for display.
func (e Event) YearRange() string {
	return FormatYearRange(e.StartYear, e.EndYear)
}

// EventFields is everything a caller supplies on create. Identifier and
// creation time are assigned by storage.
type EventFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     *string  `json:"summary,omitempty"`
	StartYear   int      `json:"start_year"`
	EndYear     *int     `json:"end_year,omitempty"`
	Category    Category `json:"category"`
	Images      []string `json:"images,omitempty"`
	PDFURL      *string  `json:"pdf_url,omitempty"`
	ParentID    *string  `json:"parent_id,omitempty"`
}

// EventUpdate is a partial update. Nil fields are left untouched. The parent
// reference cannot be changed after creation.
type EventUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	StartYear   *int      `json:"start_year,omitempty"`
	EndYear     *int      `json:"end_year,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	PDFURL      *string   `json:"pdf_url,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u EventUpdate) IsEmpty() bool {
	return u == (EventUpdate{})
}

// Apply returns a copy of e with the update's non-nil fields applied.
func (u EventUpdate) Apply(e Event) Event {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Summary != nil {
		e.Summary = u.Summary
	}
	if u.StartYear != nil {
		e.StartYear = *u.StartYear
	}
	if u.EndYear != nil {
		e.EndYear = u.EndYear
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Images != nil {
		e.Images = *u.Images
	}
	if u.PDFURL != nil {
		e.PDFURL = u.PDFURL
	}
	return e
}

// NewEventDraft returns the defaults of a fresh edit form: the current year,
// the exploration category and no images. parentID may be empty.
func NewEventDraft(now time.Time, parentID string) EventFields {
	draft := EventFields{
		StartYear: now.Year(),
		Category:  CategoryExploration,
		Images:    []string{},
	}
	if parentID != "" {
		draft.ParentID = &parentID
	}
	return draft
}

// FormatYearRange renders "{start}" when end is absent or equal to start,
// otherwise "{start}-{end}".
func FormatYearRange(start int, end *int) string {
	if end == nil || *end == start {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(*end)
}
