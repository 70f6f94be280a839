package models

import "time"

// Position bounds. Randomised positions land in [PositionMin, PositionMin+PositionSpan].
const (
	PositionMin  = 20.0
	PositionSpan = 60.0
)

// Thought is a node in the philosophy space. X and Y are percentage
// coordinates used only for layout.
type Thought struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	X         *float64  `json:"x,omitempty"`
	Y         *float64  `json:"y,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HasPosition reports whether both coordinates are stored.
func (t Thought) HasPosition() bool {
	return t.X != nil && t.Y != nil
}

type ThoughtFields struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
}

// ThoughtUpdate edits text only; position is fixed after creation.
type ThoughtUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (u ThoughtUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// RandomPosition picks a point in the visible band. float01 must return
// values in [0,1).
func RandomPosition(float01 func() float64) (x, y float64) {
	return PositionMin + float01()*PositionSpan, PositionMin + float01()*PositionSpan
}
