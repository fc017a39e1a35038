package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slices"

	"github.com/safafin/go-loan-api/internal/common/auth"
	"github.com/safafin/go-loan-api/internal/common/graceful"
	"github.com/safafin/go-loan-api/internal/common/idgenerator"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/common/metrics"
	"github.com/safafin/go-loan-api/internal/common/publisher"
	"github.com/safafin/go-loan-api/internal/common/retry"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/repositories"
	"github.com/safafin/go-loan-api/internal/services"

	_ "github.com/lib/pq"
)

type Setup struct {
	Config       config.Config
	WriteDB      *sql.DB
	ReadDB       *sql.DB
	Cache        *redis.Client
	Registry     *prometheus.Registry
	RepoCache    repositories.CacheRepository
	TokenManager auth.TokenManager
	Service      *services.Services
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logOpts := []log.InitOption{log.WithLevel(cfg.App.LogLevel)}

	structuredLogEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if !slices.Contains(structuredLogEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logOpts = append(logOpts, log.WithConsoleOutput())
	}

	log.Init(cfg.App.Name, logOpts...)

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	loanMetrics := metrics.NewLoanPrometheusMetrics(registry)

	// connect to db master
	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	// register DB stat prometheus metrics
	registry.MustRegister(
		collectors.NewDBStatsCollector(writeDB, cfg.App.Name+"-"+command+"-write"),
		collectors.NewDBStatsCollector(readDB, cfg.App.Name+"-"+command+"-read"),
	)

	// connect to redis
	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	// register repository
	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(cache)

	idGenerator := idgenerator.New()
	tokenManager := auth.NewTokenManager(cfg.Auth)
	retryer := retry.NewExponentialBackOff(cfg.Retry)

	producer, err := publisher.NewKafkaSyncProducer(cfg.Broker)
	if err != nil {
		err = fmt.Errorf("unable to create client kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	loanEventPub := publisher.NewPublisher(producer, cfg.Broker.LoanEventTopic)

	// register service
	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		loanEventPub,
		idGenerator,
		tokenManager,
		retryer,
		loanMetrics,
	)

	return &Setup{
		Config:       cfg,
		WriteDB:      writeDB,
		ReadDB:       readDB,
		Cache:        cache,
		Registry:     registry,
		RepoCache:    cacheRepo,
		TokenManager: tokenManager,
		Service:      srv,
	}, stopper, nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
