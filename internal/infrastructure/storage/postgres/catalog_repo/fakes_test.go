package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"woodshop/internal/infrastructure/storage/postgres"
)

// assign copies val into the pointer dest, allocating when dest points to a pointer.
func assign(dest, val any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.New("destination must be a non-nil pointer")
	}
	target := dv.Elem()
	if val == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	v := reflect.ValueOf(val)
	if target.Kind() == reflect.Ptr && !v.Type().AssignableTo(target.Type()) {
		p := reflect.New(target.Type().Elem())
		if err := assign(p.Interface(), val); err != nil {
			return err
		}
		target.Set(p)
		return nil
	}
	switch {
	case v.Type().AssignableTo(target.Type()):
		target.Set(v)
	case v.Type().ConvertibleTo(target.Type()):
		target.Set(v.Convert(target.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", val, target.Type())
	}
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(r.values))
	}
	for i := range dest {
		if err := assign(dest[i], r.values[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeRows struct {
	cols   []string
	data   [][]any
	pos    int
	closed bool
}

func newFakeRows(cols []string, data ...[]any) *fakeRows {
	return &fakeRows{cols: cols, data: data}
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{values: r.data[r.pos-1]}.Scan(dest...)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

type recordedQuery struct {
	sql  string
	args []any
}

// fakeConn answers QueryRow and Query through hooks and records every statement.
type fakeConn struct {
	queryRow func(sql string, args []any) pgx.Row
	query    func(sql string, args []any) (pgx.Rows, error)

	rowCalls   []recordedQuery
	queryCalls []recordedQuery
	released   int
}

func (c *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.rowCalls = append(c.rowCalls, recordedQuery{sql, args})
	if c.queryRow == nil {
		return fakeRow{err: errors.New("unexpected QueryRow")}
	}
	return c.queryRow(sql, args)
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.queryCalls = append(c.queryCalls, recordedQuery{sql, args})
	if c.query == nil {
		return nil, errors.New("unexpected Query")
	}
	return c.query(sql, args)
}

func (c *fakeConn) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected Exec")
}

func (c *fakeConn) Release() { c.released++ }

type fakeProvider struct {
	conn     *fakeConn
	err      error
	acquired int
}

func (p *fakeProvider) Acquire(context.Context) (postgres.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.acquired++
	return p.conn, nil
}
