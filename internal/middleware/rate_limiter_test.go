package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"truestate/internal/config"
	"truestate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RateLimiterTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	clock   time.Time
	limiter *RateLimiter
	handler echo.HandlerFunc
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
	s.clock = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.limiter = NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	s.limiter.now = func() time.Time { return s.clock }
	s.handler = s.limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func (s *RateLimiterTestSuite) call(ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	s.Require().NoError(s.handler(s.echo.NewContext(req, rec)))
	return rec
}

func (s *RateLimiterTestSuite) TestMiddleware_AllowsBurstThenRejects() {
	for i := range 10 {
		s.Equal(http.StatusOK, s.call("10.0.0.1").Code, "request %d", i)
	}

	rec := s.call("10.0.0.1")

	s.Equal(http.StatusTooManyRequests, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body.Success)
	s.Equal("SYSTEM_006", body.Error.Code)
}

func (s *RateLimiterTestSuite) TestMiddleware_RefillsOverTime() {
	for range 10 {
		s.call("10.0.0.1")
	}
	s.Equal(http.StatusTooManyRequests, s.call("10.0.0.1").Code)

	s.clock = s.clock.Add(time.Second)

	for range 5 {
		s.Equal(http.StatusOK, s.call("10.0.0.1").Code)
	}
	s.Equal(http.StatusTooManyRequests, s.call("10.0.0.1").Code)
}

func (s *RateLimiterTestSuite) TestMiddleware_SeparateBucketPerIP() {
	for range 11 {
		s.call("10.0.0.1")
	}

	s.Equal(http.StatusOK, s.call("10.0.0.2").Code)
	s.Equal(2, s.limiter.visitorCount())
}

func (s *RateLimiterTestSuite) TestAllow_DisabledWhenRateNotPositive() {
	limiter := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 0, RateLimitBurst: 0})

	for range 100 {
		s.True(limiter.Allow("10.0.0.1"))
	}
	s.Equal(0, limiter.visitorCount())
}

func (s *RateLimiterTestSuite) TestNewRateLimiter_BurstFloor() {
	limiter := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: -3})
	limiter.now = func() time.Time { return s.clock }

	s.True(limiter.Allow("10.0.0.1"))
	s.False(limiter.Allow("10.0.0.1"))
}

func (s *RateLimiterTestSuite) TestCleanup_DropsStaleVisitors() {
	s.limiter.Allow("10.0.0.1")
	s.clock = s.clock.Add(2 * time.Minute)
	s.limiter.Allow("10.0.0.2")

	s.clock = s.clock.Add(90 * time.Second)
	s.limiter.Cleanup()

	s.Equal(1, s.limiter.visitorCount())
	s.limiter.mu.Lock()
	_, kept := s.limiter.visitors["10.0.0.2"]
	s.limiter.mu.Unlock()
	s.True(kept)
}

func (s *RateLimiterTestSuite) TestStartCleanup_StopsWithContext() {
	limiter := NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	var mu sync.Mutex
	now := time.Now()
	limiter.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	limiter.Allow("10.0.0.1")

	mu.Lock()
	now = now.Add(visitorTTL + time.Second)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter.StartCleanup(ctx, 10*time.Millisecond)

	s.Eventually(func() bool { return limiter.visitorCount() == 0 }, time.Second, 5*time.Millisecond)
}

func (s *RateLimiterTestSuite) TestAllow_ConcurrentAccess() {
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.limiter.Allow("10.0.0.9") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(10, allowed)
}
