package services

import (
	"github.com/safafin/go-loan-api/internal/common/auth"
	"github.com/safafin/go-loan-api/internal/common/idgenerator"
	"github.com/safafin/go-loan-api/internal/common/metrics"
	"github.com/safafin/go-loan-api/internal/common/publisher"
	"github.com/safafin/go-loan-api/internal/common/retry"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	loanEventPub publisher.Publisher
	idgenerator  idgenerator.Generator
	tokenManager auth.TokenManager
	retryer      retry.Retryer
	metrics      *metrics.LoanPrometheusMetrics

	common service

	Customer    *customer
	Loan        *loan
	Installment *installment
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	loanEventPub publisher.Publisher,
	idgenerator idgenerator.Generator,
	tokenManager auth.TokenManager,
	retryer retry.Retryer,
	metrics *metrics.LoanPrometheusMetrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		cacheRepo:    cacheRepo,
		loanEventPub: loanEventPub,
		idgenerator:  idgenerator,
		tokenManager: tokenManager,
		retryer:      retryer,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Customer = (*customer)(&srv.common)
	srv.Loan = (*loan)(&srv.common)
	srv.Installment = (*installment)(&srv.common)

	return srv
}
