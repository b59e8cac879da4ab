package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the read surface shared by Conn and scany.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a single leased connection. *pgxpool.Conn satisfies it.
type Conn interface {
	Querier
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Release()
}

// ConnProvider leases connections. Every repository operation acquires
// exactly one Conn and releases it before returning.
type ConnProvider interface {
	Acquire(ctx context.Context) (Conn, error)
}
