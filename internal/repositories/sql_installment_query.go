package repositories

// query to installment database
var (
	installmentColumns = `"id", "loanId", "amount", "totalAmount", "paidAmount", "dueDate", "paymentDate", "isPaid", "createdAt", "updatedAt"`

	queryInstallmentCreate = `
		INSERT INTO installment(
			"loanId", "amount", "totalAmount", "paidAmount", "dueDate", "isPaid", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, 0, $4, false, now(), now()
		)
		RETURNING ` + installmentColumns + `;`

	queryInstallmentGetAllByLoanID = `SELECT ` + installmentColumns + `
		FROM "installment"
		WHERE "loanId" = $1
		ORDER BY "dueDate" ASC;`

	queryInstallmentGetUnpaidByLoanID = `SELECT ` + installmentColumns + `
		FROM "installment"
		WHERE "loanId" = $1 AND "isPaid" = false
		ORDER BY "dueDate" ASC;`

	queryInstallmentMarkPaid = `
		UPDATE "installment"
		SET "isPaid" = true, "paidAmount" = $2, "paymentDate" = $3, "updatedAt" = now()
		WHERE "id" = $1 AND "isPaid" = false;`
)
