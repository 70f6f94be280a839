// Package rowstore defines the storage gateway the content model talks to: a
// row store addressed by table name with insert, filtered/ordered select,
// update-by-id and delete-by-id. Backends live in the memory, postgrest and
// postgres subpackages.
package rowstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"strata/pkg/platform/sentinel"
)

// Table names.
const (
	TableEvents   = "events"
	TableThoughts = "thoughts"
	TableComments = "comments"
)

// Server-assigned columns present on every table.
const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
)

// TimestampLayout is the fixed-width form used by backends that format
// created_at themselves, so lexical and chronological order agree.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

var (
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotConfigured is returned by every call of an unconfigured gateway.
	ErrNotConfigured = fmt.Errorf("storage gateway not configured: %w", sentinel.ErrUnavailable)
)

// Row is one JSON-shaped record keyed by column name.
type Row map[string]any

// Filter is a column equality predicate.
type Filter struct {
	Column string
	Value  any
}

// Order sorts by one column.
type Order struct {
	Column     string
	Descending bool
}

// Query selects rows matching all filters, sorted by Order in sequence.
// An empty Order leaves the backend's natural order.
type Query struct {
	Filters []Filter
	Order   []Order
}

// Eq builds an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Asc orders ascending by column.
func Asc(column string) Order {
	return Order{Column: column}
}

// Desc orders descending by column.
func Desc(column string) Order {
	return Order{Column: column, Descending: true}
}

// Gateway is the storage boundary. Every call is fallible; callers decide how
// to degrade.
type Gateway interface {
	// Insert stores row and returns it with server-assigned id and created_at.
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Update applies a partial field set. Zero matched rows is not an error.
	Update(ctx context.Context, table, id string, fields Row) error
	// Delete removes the row. A missing id is not an error.
	Delete(ctx context.Context, table, id string) error
}

// Encode converts a JSON-tagged struct (or map) into a Row.
func Encode(v any) (Row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	var row Row
	if err := json.Unmarshal(b, &row); err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return row, nil
}

// Decode converts a Row into T using T's JSON tags.
func Decode[T any](row Row) (T, error) {
	var out T
	b, err := json.Marshal(row)
	if err != nil {
		return out, fmt.Errorf("decode row: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode row: %w", err)
	}
	return out, nil
}

// DecodeAll decodes every row, failing on the first bad one.
func DecodeAll[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := Decode[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Clone returns a deep, JSON-normalized copy of row (ints become float64,
// slices become []any).
func Clone(row Row) (Row, error) {
	return Encode(row)
}

// Unconfigured is the gateway used when no endpoint or key is supplied.
// Every operation fails with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Insert(context.Context, string, Row) (Row, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Select(context.Context, string, Query) ([]Row, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) Update(context.Context, string, string, Row) error {
	return ErrNotConfigured
}

func (Unconfigured) Delete(context.Context, string, string) error {
	return ErrNotConfigured
}
