// Package memory is an in-process rowstore.Gateway. It backs local
// development and tests; data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"strata/internal/rowstore"
)

// Gateway keeps rows per table in insertion order.
type Gateway struct {
	mu     sync.RWMutex
	tables map[string][]rowstore.Row
	schema rowstore.Schema
	clock  func() time.Time
	newID  func() string
}

type Option func(*Gateway)

// WithClock overrides the created_at source.
func WithClock(clock func() time.Time) Option {
	return func(g *Gateway) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// WithIDGenerator overrides id assignment.
func WithIDGenerator(fn func() string) Option {
	return func(g *Gateway) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithSchema replaces the default schema.
func WithSchema(s rowstore.Schema) Option {
	return func(g *Gateway) {
		g.schema = s
	}
}

// New constructs an empty gateway.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		tables: make(map[string][]rowstore.Row),
		schema: rowstore.DefaultSchema,
		clock:  time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Insert(_ context.Context, table string, row rowstore.Row) (rowstore.Row, error) {
	if err := g.schema.CheckRow(table, row); err != nil {
		return nil, err
	}
	stored, err := rowstore.Clone(row)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = rowstore.Row{}
	}
	stored[rowstore.ColumnID] = g.newID()
	stored[rowstore.ColumnCreatedAt] = g.clock().UTC().Format(rowstore.TimestampLayout)

	g.mu.Lock()
	g.tables[table] = append(g.tables[table], stored)
	g.mu.Unlock()

	return rowstore.Clone(stored)
}

func (g *Gateway) Select(_ context.Context, table string, q rowstore.Query) ([]rowstore.Row, error) {
	if err := g.schema.CheckQuery(table, q); err != nil {
		return nil, err
	}
	filters := make([]rowstore.Filter, len(q.Filters))
	for i, f := range q.Filters {
		v, err := normalize(f.Value)
		if err != nil {
			return nil, err
		}
		filters[i] = rowstore.Filter{Column: f.Column, Value: v}
	}

	g.mu.RLock()
	matched := make([]rowstore.Row, 0, len(g.tables[table]))
	for _, row := range g.tables[table] {
		if matches(row, filters) {
			matched = append(matched, row)
		}
	}
	g.mu.RUnlock()

	if len(q.Order) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i], matched[j], q.Order)
		})
	}

	out := make([]rowstore.Row, 0, len(matched))
	for _, row := range matched {
		c, err := rowstore.Clone(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (g *Gateway) Update(_ context.Context, table, id string, fields rowstore.Row) error {
	if err := g.schema.CheckRow(table, fields); err != nil {
		return err
	}
	patch, err := rowstore.Clone(fields)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, row := range g.tables[table] {
		if row[rowstore.ColumnID] != id {
			continue
		}
		for k, v := range patch {
			if k == rowstore.ColumnID {
				continue
			}
			row[k] = v
		}
		return nil
	}
	return nil
}

func (g *Gateway) Delete(_ context.Context, table, id string) error {
	if err := g.schema.CheckTable(table); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	rows := g.tables[table]
	for i, row := range rows {
		if row[rowstore.ColumnID] == id {
			g.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len reports the number of rows in table.
func (g *Gateway) Len(table string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.tables[table])
}

func normalize(v any) (any, error) {
	row, err := rowstore.Encode(map[string]any{"v": v})
	if err != nil {
		return nil, fmt.Errorf("normalize filter value: %w", err)
	}
	return row["v"], nil
}

func matches(row rowstore.Row, filters []rowstore.Filter) bool {
	for _, f := range filters {
		if compare(row[f.Column], f.Value) != 0 {
			return false
		}
	}
	return true
}

func less(a, b rowstore.Row, orders []rowstore.Order) bool {
	for _, o := range orders {
		c := compare(a[o.Column], b[o.Column])
		if c == 0 {
			continue
		}
		if o.Descending {
			return c > 0
		}
		return c < 0
	}
	return false
}

// compare orders JSON values. nil sorts after everything, matching
// Postgres NULLS LAST for ascending and NULLS FIRST for descending.
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}
