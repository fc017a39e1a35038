package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// querier is the slice of database/sql shared by *sql.DB and *sql.Tx, which
// lets every repository method run either standalone or inside Atomic
// without knowing which.
type querier interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func withTx(ctx context.Context, tx querier) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// writer resolves to the enclosing transaction when there is one, otherwise
// the write pool. The credit ledger and settlement flows depend on their
// locked reads and the following updates landing on the same connection.
func (r *Repository) writer(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(querier); ok {
		return tx
	}
	return r.dbWrite
}

// reader also prefers the enclosing transaction: a read issued mid-settlement
// must observe the rows that transaction already changed, not the replica.
func (r *Repository) reader(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(querier); ok {
		return tx
	}
	return r.dbRead
}
