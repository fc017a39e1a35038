package loan

import (
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/safafin/go-loan-api/internal/common/auth"
	"github.com/safafin/go-loan-api/internal/common/http/middleware"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/models"
	mockRepo "github.com/safafin/go-loan-api/internal/repositories/mock"
	"github.com/safafin/go-loan-api/internal/services/mock"
)

type testLoanHelper struct {
	router          *fiber.App
	mockCtrl        *gomock.Controller
	mockLoanService *mock.MockLoanService
	tokenManager    auth.TokenManager
}

func loanTestHelper(t *testing.T) testLoanHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockLoanSvc := mock.NewMockLoanService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)

	cfg := config.Config{
		Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour},
	}
	tokenManager := auth.NewTokenManager(cfg.Auth)

	app := fiber.New()
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(cfg, mockCacheRepo, tokenManager)

	New(v1Group, mockLoanSvc, m)

	return testLoanHelper{
		router:          app,
		mockCtrl:        mockCtrl,
		mockLoanService: mockLoanSvc,
		tokenManager:    tokenManager,
	}
}

func (h testLoanHelper) tokenFor(t *testing.T, customer models.Customer) string {
	t.Helper()

	token, err := h.tokenManager.Generate(customer)
	require.NoError(t, err)
	return token
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
