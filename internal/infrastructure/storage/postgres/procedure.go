package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"woodshop/internal/domain"
)

// Output parameters every st_manage_* procedure declares last, in this order.
const (
	OutReturnCode = "p_return_code"
	OutError      = "p_error"
	OutNewID      = "p_new_id"
)

// ProcParams is an ordered list of named procedure arguments.
type ProcParams struct {
	names  []string
	values []any
}

// NewProcParams creates an empty parameter list.
func NewProcParams() *ProcParams {
	return &ProcParams{}
}

// Add appends a named argument.
func (p *ProcParams) Add(name string, value any) *ProcParams {
	p.names = append(p.names, name)
	p.values = append(p.values, value)
	return p
}

// Names returns the argument names in call order.
func (p *ProcParams) Names() []string {
	return p.names
}

// Value returns the argument bound to name.
func (p *ProcParams) Value(name string) (any, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return nil, false
}

// BuildCall renders a CALL statement in named notation with the three
// output parameters appended as NULL placeholders.
func BuildCall(procedure string, params *ProcParams) (string, []any, error) {
	parts := make([]string, 0, len(params.names)+3)
	for _, name := range params.names {
		parts = append(parts, name+" => ?")
	}
	parts = append(parts,
		OutReturnCode+" => NULL",
		OutError+" => NULL",
		OutNewID+" => NULL",
	)

	sql := fmt.Sprintf("CALL %s(%s)", procedure, strings.Join(parts, ", "))
	sql, err := squirrel.Dollar.ReplacePlaceholders(sql)
	if err != nil {
		return "", nil, fmt.Errorf("build call %s: %w", procedure, err)
	}
	return sql, params.values, nil
}

// CallProcedure invokes procedure on q and reads back its output parameters.
func CallProcedure(ctx context.Context, q Querier, procedure string, params *ProcParams) (domain.RawOutcome, error) {
	sql, args, err := BuildCall(procedure, params)
	if err != nil {
		return domain.RawOutcome{}, err
	}

	var (
		code  *int32
		msg   *string
		newID *int32
	)
	if err := q.QueryRow(ctx, sql, args...).Scan(&code, &msg, &newID); err != nil {
		return domain.RawOutcome{}, fmt.Errorf("call %s: %w", procedure, describe(err))
	}
	if code == nil {
		return domain.RawOutcome{}, fmt.Errorf("call %s: no return code", procedure)
	}

	out := domain.RawOutcome{ReturnCode: int(*code)}
	if msg != nil {
		out.Message = *msg
	}
	if newID != nil {
		id := int(*newID)
		out.GeneratedID = &id
	}
	return out, nil
}

// describe keeps only the server message of a PostgreSQL error.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errors.New(pgErr.Message)
	}
	return err
}
