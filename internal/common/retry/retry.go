package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer re-runs an operation with exponential backoff. Origination and
// settlement use it around their database transactions so that serialization
// conflicts between concurrent requests on the same customer or loan are
// retried instead of surfaced.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg config.Retry
}

func NewExponentialBackOff(cfg config.Retry) Retryer {
	if cfg.MaxBackoffTime <= 0 {
		cfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if cfg.BackoffMultiplier <= 0 {
		cfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{cfg: cfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.cfg.MaxBackoffTime
	eb.Multiplier = r.cfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retry budget exhausted: %v", err)
		return err
	}

	return nil
}

// StopRetryWithErr marks an error as permanent so the backoff loop stops
// immediately. Call it inside the operation for business failures.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
