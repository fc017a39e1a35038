package services_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/safafin/go-loan-api/internal/common/auth"
	mockIDGenerator "github.com/safafin/go-loan-api/internal/common/idgenerator/mock"
	"github.com/safafin/go-loan-api/internal/common/log"
	mockPublisher "github.com/safafin/go-loan-api/internal/common/publisher/mock"
	"github.com/safafin/go-loan-api/internal/common/retry"
	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/repositories"
	"github.com/safafin/go-loan-api/internal/repositories/mock"
	"github.com/safafin/go-loan-api/internal/services"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockSQLRepository         *mock.MockSQLRepository
	mockCustomerRepository    *mock.MockCustomerRepository
	mockLoanRepository        *mock.MockLoanRepository
	mockInstallmentRepository *mock.MockInstallmentRepository
	mockCacheRepository       *mock.MockCacheRepository
	mockLoanEventPublisher    *mockPublisher.MockPublisher
	mockIDGenerator           *mockIDGenerator.MockGenerator

	services *services.Services
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockCustomerRepository := mock.NewMockCustomerRepository(mockCtrl)
	mockLoanRepository := mock.NewMockLoanRepository(mockCtrl)
	mockInstallmentRepository := mock.NewMockInstallmentRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)
	mockLoanEventPub := mockPublisher.NewMockPublisher(mockCtrl)
	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)

	mockSQLRepository.EXPECT().GetCustomerRepository().Return(mockCustomerRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetLoanRepository().Return(mockLoanRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetInstallmentRepository().Return(mockInstallmentRepository).AnyTimes()
	mockSQLRepository.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			return steps(ctx, mockSQLRepository)
		}).
		AnyTimes()

	mockIDGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("loan-event-test").AnyTimes()
	mockLoanEventPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := config.Config{
		Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour},
		Retry: config.Retry{
			MaxBackoffTime:    20 * time.Millisecond,
			BackoffMultiplier: 1.1,
			MaxRetries:        2,
		},
	}

	srv := services.New(
		cfg,
		mockSQLRepository,
		mockCacheRepository,
		mockLoanEventPub,
		mockIDGen,
		auth.NewTokenManager(cfg.Auth),
		retry.NewExponentialBackOff(cfg.Retry),
		nil,
	)

	return testServiceHelper{
		mockSQLRepository:         mockSQLRepository,
		mockCustomerRepository:    mockCustomerRepository,
		mockLoanRepository:        mockLoanRepository,
		mockInstallmentRepository: mockInstallmentRepository,
		mockCacheRepository:       mockCacheRepository,
		mockLoanEventPublisher:    mockLoanEventPub,
		mockIDGenerator:           mockIDGen,
		services:                  srv,
	}
}
