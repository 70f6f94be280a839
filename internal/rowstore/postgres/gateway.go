// Package postgres implements rowstore.Gateway directly on PostgreSQL.
// Rows cross the boundary as JSON (row_to_json / json_populate_record), so a
// single implementation serves every table in the schema.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"strata/internal/rowstore"
	"strata/pkg/platform/sentinel"
)

// Gateway persists rows in PostgreSQL.
type Gateway struct {
	db     *sql.DB
	schema rowstore.Schema
}

// New constructs a PostgreSQL-backed gateway.
func New(db *sql.DB) *Gateway {
	return &Gateway{db: db, schema: rowstore.DefaultSchema}
}

func (g *Gateway) Insert(ctx context.Context, table string, row rowstore.Row) (rowstore.Row, error) {
	if err := g.schema.CheckRow(table, row); err != nil {
		return nil, err
	}
	row = withoutServerColumns(row)
	tbl := pq.QuoteIdentifier(table)

	var query string
	var args []any
	if len(row) == 0 {
		query = fmt.Sprintf(`INSERT INTO %s AS t DEFAULT VALUES RETURNING row_to_json(t)`, tbl)
	} else {
		payload, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("encode insert: %w", err)
		}
		cols := quoteAll(rowstore.SortedKeys(row))
		query = fmt.Sprintf(`
			INSERT INTO %s AS t (%s)
			SELECT %s FROM json_populate_record(NULL::%s, $1)
			RETURNING row_to_json(t)`, tbl, cols, cols, tbl)
		args = append(args, string(payload))
	}

	var raw []byte
	if err := g.db.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, translate(err))
	}
	var out rowstore.Row
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode inserted %s: %w", table, err)
	}
	return out, nil
}

func (g *Gateway) Select(ctx context.Context, table string, q rowstore.Query) ([]rowstore.Row, error) {
	if err := g.schema.CheckQuery(table, q); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `SELECT row_to_json(t) FROM %s AS t`, pq.QuoteIdentifier(table))
	args := make([]any, 0, len(q.Filters))
	for i, f := range q.Filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "t.%s = $%d", pq.QuoteIdentifier(f.Column), i+1)
		args = append(args, f.Value)
	}
	for i, o := range q.Order {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString("t." + pq.QuoteIdentifier(o.Column))
		if o.Descending {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
	}

	rows, err := g.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, translate(err))
	}
	defer rows.Close()

	out := []rowstore.Row{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var row rowstore.Row
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, translate(err))
	}
	return out, nil
}

func (g *Gateway) Update(ctx context.Context, table, id string, fields rowstore.Row) error {
	if err := g.schema.CheckRow(table, fields); err != nil {
		return err
	}
	fields = withoutServerColumns(fields)
	if len(fields) == 0 {
		return nil
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}

	tbl := pq.QuoteIdentifier(table)
	sets := make([]string, 0, len(fields))
	for _, c := range rowstore.SortedKeys(fields) {
		qc := pq.QuoteIdentifier(c)
		sets = append(sets, fmt.Sprintf("%s = r.%s", qc, qc))
	}
	query := fmt.Sprintf(`
		UPDATE %s AS t SET %s
		FROM json_populate_record(NULL::%s, $1) AS r
		WHERE t.id = $2`, tbl, strings.Join(sets, ", "), tbl)

	if _, err := g.db.ExecContext(ctx, query, string(payload), id); err != nil {
		return fmt.Errorf("update %s: %w", table, translate(err))
	}
	return nil
}

func (g *Gateway) Delete(ctx context.Context, table, id string) error {
	if err := g.schema.CheckTable(table); err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, pq.QuoteIdentifier(table))
	if _, err := g.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete %s: %w", table, translate(err))
	}
	return nil
}

func withoutServerColumns(row rowstore.Row) rowstore.Row {
	out := make(rowstore.Row, len(row))
	for k, v := range row {
		if k == rowstore.ColumnID || k == rowstore.ColumnCreatedAt {
			continue
		}
		out[k] = v
	}
	return out
}

func quoteAll(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}

// translate marks connection-class failures as unavailable so callers can
// tell an unreachable database from a rejected statement.
func translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" {
			return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
		}
		return err
	}
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	return err
}
