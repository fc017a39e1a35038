package services

import (
	"errors"

	"github.com/lib/pq"
)

// isRetryableTxError reports whether a transaction failed due to a conflict
// with a concurrent transaction, so re-running it may succeed.
// 40001 is serialization_failure, 40P01 is deadlock_detected.
func isRetryableTxError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}

	return false
}
