package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	cur *customerRepository
	lr  *loanRepository
	ir  *installmentRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.cur = (*customerRepository)(&rtx.common)
	rtx.lr = (*loanRepository)(&rtx.common)
	rtx.ir = (*installmentRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetCustomerRepository() CustomerRepository
	GetLoanRepository() LoanRepository
	GetInstallmentRepository() InstallmentRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside a single database transaction. The transaction is
// injected into the context, so every repository call made with that context
// participates in it. A panic or returned error rolls the whole thing back.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = withTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetCustomerRepository() CustomerRepository {
	return r.cur
}

func (r *Repository) GetLoanRepository() LoanRepository {
	return r.lr
}

func (r *Repository) GetInstallmentRepository() InstallmentRepository {
	return r.ir
}
