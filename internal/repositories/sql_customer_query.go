package repositories

// query to customer database
var (
	customerColumns = `"id", "name", "surname", "username", "passwordHash", "role", "creditLimit", "usedCreditLimit", "createdAt", "updatedAt"`

	queryCustomerCreate = `
		INSERT INTO customer(
			"name", "surname", "username", "passwordHash", "role", "creditLimit", "usedCreditLimit", "createdAt", "updatedAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, now(), now()
		)
		RETURNING ` + customerColumns + `;`

	queryCustomerGetOne = `SELECT ` + customerColumns + `
		FROM "customer"
		WHERE "id" = $1;`

	queryCustomerGetOneForUpdate = `SELECT ` + customerColumns + `
		FROM "customer"
		WHERE "id" = $1
		FOR UPDATE;`

	queryCustomerGetOneByUsername = `SELECT ` + customerColumns + `
		FROM "customer"
		WHERE "username" = $1;`

	queryCustomerUpdateUsedCreditLimit = `
		UPDATE "customer"
		SET "usedCreditLimit" = $2, "updatedAt" = now()
		WHERE "id" = $1;`
)
