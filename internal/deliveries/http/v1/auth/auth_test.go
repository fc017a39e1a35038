package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/log"
	"github.com/safafin/go-loan-api/internal/services/mock"
)

type testAuthHelper struct {
	router              *fiber.App
	mockCtrl            *gomock.Controller
	mockCustomerService *mock.MockCustomerService
}

func authTestHelper(t *testing.T) testAuthHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockCustomerSvc := mock.NewMockCustomerService(mockCtrl)

	app := fiber.New()
	v1Group := app.Group("/api/v1")

	New(v1Group, mockCustomerSvc)

	return testAuthHelper{
		router:              app,
		mockCtrl:            mockCtrl,
		mockCustomerService: mockCustomerSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_login(t *testing.T) {
	testHelper := authTestHelper(t)
	expiresAt := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	type args struct {
		body string
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name     string
		args     args
		mockData mockData
		doMock   func(args args, mockData mockData)
	}{
		{
			name: "success",
			args: args{
				body: `{"username":"jdoe","password":"hunter22-and-then-some"}`,
			},
			mockData: mockData{
				wantRes:  `{"token":"signed-token","expiresAt":"2026-01-02T15:04:05Z"}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockCustomerService.EXPECT().
					Authenticate(gomock.AssignableToTypeOf(context.Background()), "jdoe", "hunter22-and-then-some").
					Return("signed-token", expiresAt, nil)
			},
		},
		{
			name: "wrong credentials",
			args: args{
				body: `{"username":"jdoe","password":"not-the-password"}`,
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":401,"message":"invalid username or password"}`,
				wantCode: 401,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockCustomerService.EXPECT().
					Authenticate(gomock.AssignableToTypeOf(context.Background()), "jdoe", "not-the-password").
					Return("", time.Time{}, common.ErrInvalidCredentials)
			},
		},
		{
			name: "error validating required",
			args: args{
				body: `{}`,
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"LOAN-42210","field":"username","message":"username is required"},{"code":"LOAN-42211","field":"password","message":"password is required"}]}`,
				wantCode: 422,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.args.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := testHelper.router.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
