package middleware

import (
	"github.com/safafin/go-loan-api/internal/common/auth"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/repositories"
)

type AppMiddleware struct {
	conf         config.Config
	cacheRepo    repositories.CacheRepository
	tokenManager auth.TokenManager
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository,
	tokenManager auth.TokenManager) AppMiddleware {
	return AppMiddleware{
		conf:         conf,
		cacheRepo:    cacheRepo,
		tokenManager: tokenManager,
	}
}
