package http

import (
	"context"
	"fmt"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	recovermw "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/safafin/go-loan-api/internal/common/auth"
	"github.com/safafin/go-loan-api/internal/common/graceful"
	commonhttp "github.com/safafin/go-loan-api/internal/common/http"
	"github.com/safafin/go-loan-api/internal/common/http/middleware"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/deliveries/http/health"
	"github.com/safafin/go-loan-api/internal/repositories"
	"github.com/safafin/go-loan-api/internal/services"

	v1auth "github.com/safafin/go-loan-api/internal/deliveries/http/v1/auth"
	v1customer "github.com/safafin/go-loan-api/internal/deliveries/http/v1/customer"
	v1installment "github.com/safafin/go-loan-api/internal/deliveries/http/v1/installment"
	v1loan "github.com/safafin/go-loan-api/internal/deliveries/http/v1/loan"
)

type svc struct {
	app             *fiber.App
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.app.Listen(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.app.ShutdownWithContext(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	registry *prometheus.Registry,
	cacheRepo repositories.CacheRepository,
	tokenManager auth.TokenManager,
	customerService services.CustomerService,
	loanService services.LoanService,
	installmentService services.InstallmentService,
) *svc {
	app := fiber.New(fiber.Config{
		AppName:      conf.App.Name,
		ReadTimeout:  conf.App.HTTPTimeout,
		WriteTimeout: conf.App.HTTPTimeout,
	})

	svc := &svc{
		app:             app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo, tokenManager)
	// options middleware
	app.Use(recovermw.New())
	app.Use(m.RequestContext())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		app.Use(pprof.New())
	}

	// prometheus metrics
	prom := fiberprometheus.NewWithRegistry(registry, conf.App.Name, "http", "", nil)
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")

	// v1Group register api, route auth is public, the rest sits behind
	// the bearer token middleware applied per handler group
	v1auth.New(v1Group, customerService)
	v1customer.New(v1Group, customerService, m)
	v1loan.New(v1Group, loanService, m)
	v1installment.New(v1Group, installmentService, m)

	// prepare an endpoint for 'Not Found'.
	app.Use(func(c *fiber.Ctx) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.OriginalURL())
		return commonhttp.RestErrorResponse(c, fiber.StatusNotFound, errorMessage)
	})

	return svc
}
