package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/safafin/go-loan-api/internal/models"
)

// query to loan database
var (
	loanColumns = `"id", "customerId", "amount", "totalAmount", "numberOfInstallments", "isPaid", "createdAt", "updatedAt"`

	queryLoanCreate = `
		INSERT INTO loan(
			"customerId", "amount", "totalAmount", "numberOfInstallments", "isPaid", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, false, now(), now()
		)
		RETURNING ` + loanColumns + `;`

	queryLoanGetOne = `SELECT ` + loanColumns + `
		FROM "loan"
		WHERE "id" = $1;`

	queryLoanGetOneForUpdate = `SELECT ` + loanColumns + `
		FROM "loan"
		WHERE "id" = $1
		FOR UPDATE;`

	queryLoanMarkPaid = `
		UPDATE "loan"
		SET "isPaid" = true, "updatedAt" = now()
		WHERE "id" = $1 AND "isPaid" = false;`
)

func buildFilteredLoanQuery(builder sq.SelectBuilder, opts models.GetLoanFilter) sq.SelectBuilder {
	if opts.CustomerID != 0 {
		builder = builder.Where(sq.Eq{`"customerId"`: opts.CustomerID})
	}

	if opts.IsPaid != nil {
		builder = builder.Where(sq.Eq{`"isPaid"`: *opts.IsPaid})
	}

	if opts.NumberOfInstallments != 0 {
		builder = builder.Where(sq.Eq{`"numberOfInstallments"`: opts.NumberOfInstallments})
	}

	return builder
}

func buildListLoanQuery(opts models.GetLoanFilter) (sql string, args []interface{}, err error) {
	query := sq.Select(
		`"id"`,
		`"customerId"`,
		`"amount"`,
		`"totalAmount"`,
		`"numberOfInstallments"`,
		`"isPaid"`,
		`"createdAt"`,
		`"updatedAt"`,
	).From(`"loan"`)

	query = buildFilteredLoanQuery(query, opts).OrderBy(`"id" ASC`)

	if opts.Limit != 0 {
		query = query.Limit(opts.Limit)
	}

	if opts.Offset != 0 {
		query = query.Offset(opts.Offset)
	}

	return query.PlaceholderFormat(sq.Dollar).ToSql()
}

func buildCountLoanQuery(opts models.GetLoanFilter) (sql string, args []interface{}, err error) {
	query := sq.Select(`COUNT("id")`).From(`"loan"`)

	return buildFilteredLoanQuery(query, opts).PlaceholderFormat(sq.Dollar).ToSql()
}
