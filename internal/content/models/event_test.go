package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestFormatYearRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   *int
		want  string
	}{
		{"same year", 2020, intPtr(2020), "2020"},
		{"span", 2020, intPtr(2023), "2020-2023"},
		{"open", 2020, nil, "2020"},
		{"negative", -50, intPtr(10), "-50-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatYearRange(tt.start, tt.end))
		})
	}
}

func TestNewEventDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	draft := NewEventDraft(now, "")
	assert.Equal(t, 2026, draft.StartYear)
	assert.Equal(t, CategoryExploration, draft.Category)
	assert.Empty(t, draft.Images)
	assert.NotNil(t, draft.Images)
	assert.Nil(t, draft.ParentID)

	child := NewEventDraft(now, "evt-1")
	if assert.NotNil(t, child.ParentID) {
		assert.Equal(t, "evt-1", *child.ParentID)
	}
}

func TestEventUpdateApply(t *testing.T) {
	parent := "p-1"
	e := Event{ID: "e-1", Title: "Old", Description: "d", StartYear: 2010, Category: CategoryCreative, ParentID: &parent}

	cat := CategoryConnection
	images := []string{"a.png"}
	got := EventUpdate{Title: strPtr("New"), EndYear: intPtr(2012), Category: &cat, Images: &images}.Apply(e)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "d", got.Description)
	assert.Equal(t, 2010, got.StartYear)
	assert.Equal(t, "2010-2012", got.YearRange())
	assert.Equal(t, CategoryConnection, got.Category)
	assert.Equal(t, []string{"a.png"}, got.Images)
	assert.Equal(t, &parent, got.ParentID)
	assert.Equal(t, "Old", e.Title)
}

func TestEventUpdateIsEmpty(t *testing.T) {
	assert.True(t, EventUpdate{}.IsEmpty())
	assert.False(t, EventUpdate{Summary: strPtr("")}.IsEmpty())
}

func TestIsTopLevelTreatsEmptyParentAsAbsent(t *testing.T) {
	assert.True(t, Event{}.IsTopLevel())
	assert.True(t, Event{ParentID: strPtr("")}.IsTopLevel())
	assert.False(t, Event{ParentID: strPtr("x")}.IsTopLevel())
}
