package models

import (
	"strings"

	dErrors "strata/pkg/domain-errors"
)

// Category classifies an Event into one of the value circles.
type Category string

const (
	CategoryExploration Category = "exploration"
	CategoryConnection  Category = "connection"
	CategoryCreative    Category = "creative"
)

// CategoryInfo is the display metadata of a category.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

var categories = []CategoryInfo{
	{ID: CategoryExploration, Name: "Exploration", Color: "#a78bfa", Description: "Journeys & Discoveries"},
	{ID: CategoryConnection, Name: "Connection", Color: "#60a5fa", Description: "People & Communities"},
	{ID: CategoryCreative, Name: "Creative", Color: "#f472b6", Description: "Projects & Creations"},
}

// Categories lists every category in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryExploration, CategoryConnection, CategoryCreative:
		return true
	}
	return false
}

// Info returns display metadata. Unknown categories get a bare entry named
// after the raw value.
func (c Category) Info() CategoryInfo {
	for _, info := range categories {
		if info.ID == c {
			return info
		}
	}
	return CategoryInfo{ID: c, Name: string(c)}
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "category must be one of exploration, connection, creative")
	}
	return c, nil
}
