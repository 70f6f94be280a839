package handler

import (
	"strings"

	"github.com/google/uuid"

	"strata/internal/content/models"
	dErrors "strata/pkg/domain-errors"
	strutil "strata/pkg/platform/strings"
)

const (
	positionMin = 0.0
	positionMax = 100.0
)

// CreateEventRequest mirrors the event edit form.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     *string  `json:"summary,omitempty"`
	StartYear   *int     `json:"start_year"`
	EndYear     *int     `json:"end_year,omitempty"`
	Category    string   `json:"category"`
	Images      []string `json:"images,omitempty"`
	PDFURL      *string  `json:"pdf_url,omitempty"`
	ParentID    *string  `json:"parent_id,omitempty"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if r.Category == "" {
		r.Category = string(models.CategoryExploration)
	}
	if r.ParentID != nil {
		if p := strings.TrimSpace(*r.ParentID); p == "" {
			r.ParentID = nil
		} else {
			r.ParentID = &p
		}
	}
	r.Images = strutil.Compact(r.Images)
}

func (r *CreateEventRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.StartYear == nil {
		return dErrors.New(dErrors.CodeValidation, "start_year is required")
	}
	if _, err := models.ParseCategory(r.Category); err != nil {
		return err
	}
	if r.ParentID != nil {
		if _, err := uuid.Parse(*r.ParentID); err != nil {
			return dErrors.New(dErrors.CodeValidation, "parent_id must be a UUID")
		}
	}
	return validateYears(*r.StartYear, r.EndYear)
}

// ToFields converts a validated request.
func (r *CreateEventRequest) ToFields() models.EventFields {
	return models.EventFields{
		Title:       r.Title,
		Description: r.Description,
		Summary:     r.Summary,
		StartYear:   *r.StartYear,
		EndYear:     r.EndYear,
		Category:    models.Category(r.Category),
		Images:      r.Images,
		PDFURL:      r.PDFURL,
		ParentID:    r.ParentID,
	}
}

// UpdateEventRequest is a partial edit. The parent reference is fixed at
// creation and rejected here.
type UpdateEventRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	StartYear   *int      `json:"start_year,omitempty"`
	EndYear     *int      `json:"end_year,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	PDFURL      *string   `json:"pdf_url,omitempty"`
	ParentID    *string   `json:"parent_id,omitempty"`
}

func (r *UpdateEventRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Category != nil {
		c := strings.ToLower(strings.TrimSpace(*r.Category))
		r.Category = &c
	}
	if r.Images != nil {
		imgs := strutil.Compact(*r.Images)
		r.Images = &imgs
	}
}

func (r *UpdateEventRequest) Validate() error {
	if r.ParentID != nil {
		return dErrors.New(dErrors.CodeValidation, "parent_id cannot be changed after creation")
	}
	if r.Title != nil && *r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title cannot be empty")
	}
	if r.Category != nil {
		if _, err := models.ParseCategory(*r.Category); err != nil {
			return err
		}
	}
	// The stored bound is not visible here, so one bound alone could invert
	// the range.
	if (r.StartYear == nil) != (r.EndYear == nil) {
		return dErrors.New(dErrors.CodeValidation, "start_year and end_year must be updated together")
	}
	if r.StartYear != nil {
		if err := validateYears(*r.StartYear, r.EndYear); err != nil {
			return err
		}
	}
	if r.ToUpdate().IsEmpty() {
		return dErrors.New(dErrors.CodeValidation, "no fields to update")
	}
	return nil
}

func (r *UpdateEventRequest) ToUpdate() models.EventUpdate {
	upd := models.EventUpdate{
		Title:       r.Title,
		Description: r.Description,
		Summary:     r.Summary,
		StartYear:   r.StartYear,
		EndYear:     r.EndYear,
		Images:      r.Images,
		PDFURL:      r.PDFURL,
	}
	if r.Category != nil {
		c := models.Category(*r.Category)
		upd.Category = &c
	}
	return upd
}

// CreateThoughtRequest places a thought. Omitted coordinates are randomised
// by the service.
type CreateThoughtRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
}

func (r *CreateThoughtRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r *CreateThoughtRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	for _, c := range []*float64{r.X, r.Y} {
		if c != nil && (*c < positionMin || *c > positionMax) {
			return dErrors.New(dErrors.CodeValidation, "position must be within 0-100")
		}
	}
	return nil
}

func (r *CreateThoughtRequest) ToFields() models.ThoughtFields {
	return models.ThoughtFields{Title: r.Title, Content: r.Content, X: r.X, Y: r.Y}
}

type UpdateThoughtRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (r *UpdateThoughtRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
}

func (r *UpdateThoughtRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return dErrors.New(dErrors.CodeValidation, "no fields to update")
	}
	if r.Title != nil && *r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title cannot be empty")
	}
	return nil
}

func (r *UpdateThoughtRequest) ToUpdate() models.ThoughtUpdate {
	return models.ThoughtUpdate{Title: r.Title, Content: r.Content}
}

// SubmitCommentRequest is a visitor's reply.
type SubmitCommentRequest struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

func (r *SubmitCommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return dErrors.New(dErrors.CodeValidation, "comment content cannot be empty")
	}
	return nil
}

func validateYears(start int, end *int) error {
	if end != nil && *end < start {
		return dErrors.New(dErrors.CodeValidation, "end_year must not be before start_year")
	}
	return nil
}
