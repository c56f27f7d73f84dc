package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"truestate/internal/config"
	"truestate/internal/dto"
	"truestate/internal/errors"
	"truestate/internal/middleware"
	"truestate/internal/models"
	"truestate/internal/query"
	"truestate/internal/repositories"
	"truestate/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	repo     *repositories.MemoryTransactionRepository
	registry *prometheus.Registry
	router   *echo.Echo
}

// stalledRepository holds reads until the caller's context ends
type stalledRepository struct {
	*repositories.MemoryTransactionRepository
}

func (r stalledRepository) List(ctx context.Context, _ query.Predicate, _ query.Ordering, _ models.PageWindow) ([]models.Transaction, int64, error) {
	<-ctx.Done()
	return nil, 0, ctx.Err()
}

func (r stalledRepository) DistinctValues(ctx context.Context, _ models.FilterField) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.repo = repositories.NewMemoryTransactionRepository(
		s.record("T1", "Neha Yadav", "North", 3, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)),
		s.record("T2", "Rahul Sharma", "South", 1, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)),
		s.record("T3", "Asha Patel", "North", 7, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)),
	)
	s.registry = prometheus.NewRegistry()
	s.router = s.newRouter(s.repo, nil, s.registry)
}

func (s *RouterTestSuite) newRouter(repo repositories.TransactionRepositoryInterface, breaker services.CircuitBreakerInterface, registry *prometheus.Registry) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(RouterDeps{
		Transactions:     services.NewTransactionService(repo, breaker, nil, nil),
		FilterOptions:    services.NewFilterOptionsService(repo, nil, nil),
		RateLimiter:      middleware.NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100}),
		Registry:         registry,
		Logger:           logger,
		CORSAllowOrigins: []string{"http://localhost:5173"},
	})
}

func (s *RouterTestSuite) getWithDeadline(router *echo.Echo, target string, timeout time.Duration) *httptest.ResponseRecorder {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx))
	return rec
}

func (s *RouterTestSuite) record(id, name, region string, qty int, date time.Time) models.Transaction {
	return models.Transaction{
		TransactionID:   id,
		Date:            date,
		CustomerName:    name,
		CustomerRegion:  region,
		Gender:          "Female",
		Age:             30,
		AgeRange:        "26-35",
		ProductCategory: "Clothing",
		Tags:            "organic",
		PaymentMethod:   "UPI",
		Quantity:        qty,
		FinalAmount:     decimal.RequireFromString("100.50"),
	}
}

func (s *RouterTestSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *RouterTestSuite) TestListTransactions_DefaultsToNewestFirst() {
	rec := s.get("/api/transactions")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Require().Len(body.Data, 3)
	s.Equal("T3", body.Data[0].TransactionID)
	s.Equal(int64(3), body.Pagination.TotalItems)
	s.Equal(1, body.Pagination.TotalPages)
	s.Equal(10, body.Pagination.ItemsPerPage)
	s.Contains(rec.Body.String(), `"finalAmount":"100.5"`)
}

func (s *RouterTestSuite) TestListTransactions_FiltersSortsAndPages() {
	rec := s.get("/api/transactions?region=North&sortBy=quantity&sortOrder=asc&limit=1&page=2")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data, 1)
	s.Equal("T3", body.Data[0].TransactionID)
	s.Equal(2, body.Pagination.TotalPages)
	s.False(body.Pagination.HasNextPage)
	s.True(body.Pagination.HasPreviousPage)
}

func (s *RouterTestSuite) TestListTransactions_SearchIsCaseInsensitive() {
	rec := s.get("/api/transactions?search=RAHUL")

	var body dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data, 1)
	s.Equal("T2", body.Data[0].TransactionID)
}

func (s *RouterTestSuite) TestFilterOptions() {
	rec := s.get("/api/filters/options")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.FilterOptionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal([]string{"North", "South"}, body.Filters.Regions)
	s.Equal([]string{"UPI"}, body.Filters.PaymentMethods)
}

func (s *RouterTestSuite) TestFieldOptions() {
	rec := s.get("/api/filters/options/region")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.FieldOptionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("region", body.Field)
	s.Equal([]string{"North", "South"}, body.Values)
}

func (s *RouterTestSuite) TestFieldOptions_UnknownField() {
	rec := s.get("/api/filters/options/storeLocation")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.get("/health")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("OK", body.Status)
	s.Equal("Server is running", body.Message)
}

func (s *RouterTestSuite) TestHealth_StoreDown() {
	s.Require().NoError(s.repo.Close())

	rec := s.get("/health")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.get("/api/nope")

	s.Require().Equal(http.StatusNotFound, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body.Success)
	s.Equal("ROUTE_001", body.Error.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *RouterTestSuite) TestStoreFailureIsServiceUnavailable() {
	s.Require().NoError(s.repo.Close())

	rec := s.get("/api/transactions")

	s.Require().Equal(http.StatusServiceUnavailable, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_003", body.Error.Code)
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	s.get("/api/transactions")

	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "http_requests_total")
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func (s *RouterTestSuite) TestSecurityHeadersApplied() {
	rec := s.get("/health")

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestMetricsEndpoint_ExposesAPIErrors() {
	s.Require().Equal(http.StatusNotFound, s.get("/nope").Code)

	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `api_errors_total{code="ROUTE_001"`)
}

func (s *RouterTestSuite) TestListTransactions_DeadlineIsGatewayTimeout() {
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     1,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	router := s.newRouter(stalledRepository{s.repo}, breaker, prometheus.NewRegistry())

	rec := s.getWithDeadline(router, "/api/transactions", 10*time.Millisecond)

	s.Require().Equal(http.StatusGatewayTimeout, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal(services.StateClosed, breaker.GetState())
}

func (s *RouterTestSuite) TestFieldOptions_DeadlineIsGatewayTimeout() {
	router := s.newRouter(stalledRepository{s.repo}, nil, prometheus.NewRegistry())

	rec := s.getWithDeadline(router, "/api/filters/options/region", 10*time.Millisecond)

	s.Equal(http.StatusGatewayTimeout, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *RouterTestSuite) TestListTransactions_DateOnlyEndBoundIsMidnight() {
	_, err := s.repo.CreateBatch(context.Background(), []models.Transaction{
		s.record("T4", "Meera Iyer", "East", 2, time.Date(2023, 3, 15, 10, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)

	rec := s.get("/api/transactions?startDate=2023-03-01&endDate=2023-03-15")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data, 1)
	s.Equal("T3", body.Data[0].TransactionID)
}
