package rowstore

import (
	"fmt"
	"sort"
)

// Schema lists the columns of each table. Backends check names against it
// before building queries, so identifiers never come from callers unchecked.
type Schema map[string]map[string]struct{}

func columns(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// DefaultSchema is the portfolio's three tables.
var DefaultSchema = Schema{
	TableEvents: columns(ColumnID, "title", "description", "summary", "start_year", "end_year",
		"category", "images", "pdf_url", "parent_id", ColumnCreatedAt),
	TableThoughts: columns(ColumnID, "title", "content", "x", "y", ColumnCreatedAt),
	TableComments: columns(ColumnID, "thought_id", "content", "author", "is_public", ColumnCreatedAt),
}

// CheckTable fails for tables the schema does not know.
func (s Schema) CheckTable(table string) error {
	if _, ok := s[table]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

// CheckColumns fails for the first unknown column of table.
func (s Schema) CheckColumns(table string, cols ...string) error {
	if err := s.CheckTable(table); err != nil {
		return err
	}
	known := s[table]
	for _, c := range cols {
		if _, ok := known[c]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, c)
		}
	}
	return nil
}

// CheckQuery validates every filter and order column.
func (s Schema) CheckQuery(table string, q Query) error {
	cols := make([]string, 0, len(q.Filters)+len(q.Order))
	for _, f := range q.Filters {
		cols = append(cols, f.Column)
	}
	for _, o := range q.Order {
		cols = append(cols, o.Column)
	}
	return s.CheckColumns(table, cols...)
}

// CheckRow validates the keys of row.
func (s Schema) CheckRow(table string, row Row) error {
	return s.CheckColumns(table, SortedKeys(row)...)
}

// SortedKeys returns row's keys in lexical order.
func SortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
