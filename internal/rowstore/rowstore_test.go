package rowstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata/pkg/platform/sentinel"
)

type sample struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EndYear   *int      `json:"end_year,omitempty"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func TestEncodeDecode(t *testing.T) {
	t.Run("omitted optional fields are absent from the row", func(t *testing.T) {
		row, err := Encode(struct {
			Title   string `json:"title"`
			EndYear *int   `json:"end_year,omitempty"`
		}{Title: "Kyoto"})
		require.NoError(t, err)
		assert.Equal(t, Row{"title": "Kyoto"}, row)
	})

	t.Run("decodes server columns", func(t *testing.T) {
		row := Row{
			"id":         "e-1",
			"title":      "Kyoto",
			"end_year":   float64(2021),
			"images":     []any{"a.png"},
			"created_at": "2024-03-01T10:00:00.000000Z",
		}
		s, err := Decode[sample](row)
		require.NoError(t, err)
		assert.Equal(t, "e-1", s.ID)
		require.NotNil(t, s.EndYear)
		assert.Equal(t, 2021, *s.EndYear)
		assert.Equal(t, []string{"a.png"}, s.Images)
		assert.Equal(t, 2024, s.CreatedAt.Year())
	})

	t.Run("decode all stops on a bad row", func(t *testing.T) {
		_, err := DecodeAll[sample]([]Row{{"title": 42}})
		assert.Error(t, err)
	})
}

func TestSchema(t *testing.T) {
	s := DefaultSchema

	assert.NoError(t, s.CheckQuery(TableComments, Query{
		Filters: []Filter{Eq("thought_id", "t-1"), Eq("is_public", true)},
		Order:   []Order{Desc(ColumnCreatedAt)},
	}))
	assert.ErrorIs(t, s.CheckTable("users"), ErrUnknownTable)
	assert.ErrorIs(t, s.CheckRow(TableThoughts, Row{"title": "x", "score": 1}), ErrUnknownColumn)
	assert.ErrorIs(t, s.CheckQuery(TableEvents, Query{Order: []Order{Asc("year")}}), ErrUnknownColumn)
}

func TestUnconfigured(t *testing.T) {
	ctx := context.Background()
	var g Gateway = Unconfigured{}

	_, err := g.Select(ctx, TableEvents, Query{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)

	_, err = g.Insert(ctx, TableEvents, Row{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, g.Update(ctx, TableEvents, "id", Row{}), ErrNotConfigured)
	assert.ErrorIs(t, g.Delete(ctx, TableEvents, "id"), ErrNotConfigured)
}
