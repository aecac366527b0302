package rest_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/api/middleware"
	"github.com/coinfolio/coinfolio-sync/internal/api/rest"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/dto"
	apierrors "github.com/coinfolio/coinfolio-sync/internal/api/shared/errors"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/executor"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
)

const testCronSecret = "cron-secret"

var (
	testPublicKeyPEM string
	testUserToken    string
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	if err := setupUserToken(); err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// setupUserToken signs a token for user-1 with a throwaway key
func setupUserToken() error {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return err
	}
	testPublicKeyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	testUserToken, err = jwt.NewWithClaims(jwt.SigningMethodRS256, middleware.UserClaims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(key)
	return err
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), middleware.AuthConfig{JWTPublicKey: testPublicKeyPEM}, testCronSecret)

	return router, exec
}

func doRequest(router *gin.Engine, method, path, body string, cron bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	switch {
	case cron:
		req.Header.Set("Authorization", "Bearer "+testCronSecret)
	case strings.HasPrefix(path, "/api/v1/me"):
		req.Header.Set("Authorization", "Bearer "+testUserToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Job endpoints
// =============================================================================

func TestCronEndpoints_RequireSecret(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/cron/coins-list", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestCronEndpoints_RunTheirJob(t *testing.T) {
	tests := []struct {
		path   string
		job    domain.JobName
		params domain.JobParams
	}{
		{path: "/api/cron/coins-list", job: domain.JobCoinsList},
		{path: "/api/cron/exchange-rate", job: domain.JobExchangeRate},
		{path: "/api/cron/market-chart/7", job: domain.JobMarketChart, params: domain.JobParams{Days: domain.ChartDays7}},
		{path: "/api/cron/trending", job: domain.JobTrending},
		{path: "/api/cron/categories", job: domain.JobCategories},
		{path: "/api/cron/notifications/cleanup", job: domain.JobNotificationsCleanup},
		{path: "/api/cron/notifications/price-targets", job: domain.JobPriceTargets},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			router, exec := setupRouter(t)

			exec.EXPECT().
				RunJob(gomock.Any(), tt.job, tt.params).
				Return(&dto.JobSuccessResponse{
					Success: true,
					RunID:   "01J9Z3D7S3Q6W8V5T2K4M1N0PB",
					Stats:   domain.SyncStats{Success: 3, Requests: 3},
				}, nil)

			w := doRequest(router, http.MethodGet, tt.path, "", true)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{
				"success": true,
				"run_id": "01J9Z3D7S3Q6W8V5T2K4M1N0PB",
				"stats": {"success": 3, "skipped": 0, "errors": 0, "requests": 3}
			}`, w.Body.String())
		})
	}
}

func TestCronEndpoints_AlreadyRunning(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		RunJob(gomock.Any(), domain.JobTrending, domain.JobParams{}).
		Return(nil, domain.ErrJobAlreadyRunning)

	w := doRequest(router, http.MethodGet, "/api/cron/trending", "", true)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"job already running"}`, w.Body.String())
}

func TestCronEndpoints_JobFailure(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		RunJob(gomock.Any(), domain.JobCoinsList, domain.JobParams{}).
		Return(nil, fmt.Errorf("failed to upsert coins: %w", errors.New("connection reset")))

	w := doRequest(router, http.MethodGet, "/api/cron/coins-list", "", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to upsert coins: connection reset"}`, w.Body.String())
}

func TestCronEndpoints_UnknownChartDurationAbortsRun(t *testing.T) {
	router, _ := setupRouter(t)

	// no RunJob expectation: the run must not start
	w := doRequest(router, http.MethodGet, "/api/cron/market-chart/14", "", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "unknown market chart duration")
}

// =============================================================================
// Read endpoints
// =============================================================================

func TestGetMarketChart(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		GetMarketChart(gomock.Any(), "bitcoin", domain.ChartDays30).
		Return(&dto.MarketChartResponse{
			CoinID: "bitcoin",
			Days:   30,
			Prices: [][]float64{{1700000000000, 37000.5}},
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/coins/bitcoin/market-chart?days=30", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prices":[[1700000000000,37000.5]]`)
}

func TestGetMarketChart_InvalidDays(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/coins/bitcoin/market-chart?days=90", "", false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"validation_failed"`)
}

func TestGetCoin_DatabaseError(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		GetCoin(gomock.Any(), "bitcoin").
		Return(nil, apierrors.NewDatabaseError("Failed to get coin: timeout"))

	w := doRequest(router, http.MethodGet, "/api/v1/coins/bitcoin", "", false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"database_error"`)
}

func TestGetJobRuns(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		router, exec := setupRouter(t)

		exec.EXPECT().
			GetJobRuns(gomock.Any(), domain.JobMarketChart, 0).
			Return(&dto.ListResponse[dto.JobRunResponse]{Items: []dto.JobRunResponse{}}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/jobs/market-chart/runs", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})

	t.Run("unknown job", func(t *testing.T) {
		router, exec := setupRouter(t)

		exec.EXPECT().
			GetJobRuns(gomock.Any(), domain.JobName("nope"), 5).
			Return(nil, apierrors.NewNotFoundError("Job not found", "nope"))

		w := doRequest(router, http.MethodGet, "/api/v1/jobs/nope/runs?limit=5", "", false)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(router, http.MethodGet, "/api/v1/jobs/trending/runs?limit=1000", "", false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// Portfolio endpoints
// =============================================================================

func TestAddTransaction(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		AddTransaction(gomock.Any(), executor.User{ID: "user-1", Email: "alice@example.com"}, "bitcoin", gomock.Any()).
		DoAndReturn(func(ctx context.Context, user executor.User, coinID string, req dto.CreateTransactionRequest) (*dto.HoldingResponse, error) {
			assert.Equal(t, "-0.5", req.Quantity.String())
			assert.Equal(t, "65000", req.Price.String())
			assert.True(t, req.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
			return &dto.HoldingResponse{
				ID:            1,
				CoinID:        "bitcoin",
				TotalQuantity: decimal.RequireFromString("1.5"),
			}, nil
		})

	w := doRequest(router, http.MethodPost, "/api/v1/me/coins/bitcoin/transactions",
		`{"quantity":"-0.5","price":"65000","date":"2024-03-01T00:00:00Z"}`, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total_quantity":"1.5"`)
}

func TestAddTransaction_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"quantity":`},
		{name: "zero quantity", body: `{"quantity":"0","price":"1","date":"2024-03-01T00:00:00Z"}`},
		{name: "negative price", body: `{"quantity":"1","price":"-1","date":"2024-03-01T00:00:00Z"}`},
		{name: "missing date", body: `{"quantity":"1","price":"1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t)

			w := doRequest(router, http.MethodPost, "/api/v1/me/coins/bitcoin/transactions", tt.body, false)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAddTransaction_UnknownCoin(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		AddTransaction(gomock.Any(), gomock.Any(), "not-a-coin", gomock.Any()).
		Return(nil, apierrors.NewNotFoundError("Coin not found"))

	w := doRequest(router, http.MethodPost, "/api/v1/me/coins/not-a-coin/transactions",
		`{"quantity":"1","price":"1","date":"2024-03-01T00:00:00Z"}`, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, exec := setupRouter(t)

		exec.EXPECT().
			DeleteTransaction(gomock.Any(), gomock.Any(), int64(42)).
			Return(&dto.HoldingResponse{ID: 1, CoinID: "bitcoin"}, nil)

		w := doRequest(router, http.MethodDelete, "/api/v1/me/transactions/42", "", false)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doRequest(router, http.MethodDelete, "/api/v1/me/transactions/abc", "", false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetTarget(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		SetTarget(gomock.Any(), gomock.Any(), "bitcoin", gomock.Any()).
		DoAndReturn(func(ctx context.Context, user executor.User, coinID string, req dto.SetTargetRequest) error {
			require.True(t, req.DesiredSellPrice.Valid)
			assert.Equal(t, "80000", req.DesiredSellPrice.Decimal.String())
			return nil
		})

	w := doRequest(router, http.MethodPut, "/api/v1/me/coins/bitcoin/target", `{"desired_sell_price":"80000"}`, false)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetNotifications(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		GetNotifications(gomock.Any(), executor.User{ID: "user-1", Email: "alice@example.com"}, 10).
		Return(&dto.ListResponse[dto.NotificationResponse]{Items: []dto.NotificationResponse{}}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/me/notifications?limit=10", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPortfolioEndpoints_RequireUserToken(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/coins", nil)
	req.Header.Set("Authorization", "Bearer "+testCronSecret)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"coinfolio-api"}`, w.Body.String())
}
