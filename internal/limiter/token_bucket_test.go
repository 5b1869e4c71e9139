package limiter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
)

// stubCmdable 只实现令牌桶用到的命令，其余继承自嵌入接口（调用即panic）
type stubCmdable struct {
	redis.Cmdable
	evalResult []interface{}
	evalErr    error
	deleted    []string
}

func (s *stubCmdable) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if s.evalErr != nil {
		cmd.SetErr(s.evalErr)
		return cmd
	}
	cmd.SetVal(s.evalResult)
	return cmd
}

func (s *stubCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	s.deleted = append(s.deleted, keys...)
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func testLimiterConfig() *Config {
	return &Config{Rate: 10, Window: time.Second, Burst: 10}
}

func TestNewTokenBucketLimiter_Validation(t *testing.T) {
	if _, err := NewTokenBucketLimiter(nil, testLimiterConfig()); err == nil {
		t.Error("nil client should be rejected")
	}
	if _, err := NewTokenBucketLimiter(&stubCmdable{}, &Config{Rate: 0, Window: time.Second}); err == nil {
		t.Error("zero rate should be rejected")
	}

	lim, err := NewTokenBucketLimiter(&stubCmdable{}, &Config{Rate: 5, Window: time.Second})
	if err != nil {
		t.Fatalf("NewTokenBucketLimiter() error: %v", err)
	}
	if lim.config.Burst != 5 {
		t.Errorf("default burst = %d, want rate 5", lim.config.Burst)
	}
}

func TestTokenBucketLimiter_Allow(t *testing.T) {
	client := &stubCmdable{evalResult: []interface{}{int64(1), int64(9), int64(0)}}
	lim, err := NewTokenBucketLimiter(client, testLimiterConfig())
	if err != nil {
		t.Fatalf("NewTokenBucketLimiter() error: %v", err)
	}

	result, err := lim.Allow(context.Background(), "ip:1.2.3.4")
	if err != nil {
		t.Fatalf("Allow() error: %v", err)
	}
	if !result.Allowed || result.Remaining != 9 {
		t.Errorf("result = %+v, want allowed with 9 remaining", result)
	}
}

func TestTokenBucketLimiter_Denied(t *testing.T) {
	client := &stubCmdable{evalResult: []interface{}{int64(0), int64(0), int64(2)}}
	lim, err := NewTokenBucketLimiter(client, testLimiterConfig())
	if err != nil {
		t.Fatalf("NewTokenBucketLimiter() error: %v", err)
	}

	result, err := lim.Allow(context.Background(), "ip:1.2.3.4")
	if err != nil {
		t.Fatalf("Allow() error: %v", err)
	}
	if result.Allowed {
		t.Error("request should be denied")
	}
	if result.RetryAfter != 2*time.Second {
		t.Errorf("RetryAfter = %v, want 2s", result.RetryAfter)
	}
}

func TestTokenBucketLimiter_Reset(t *testing.T) {
	client := &stubCmdable{}
	lim, err := NewTokenBucketLimiter(client, testLimiterConfig())
	if err != nil {
		t.Fatalf("NewTokenBucketLimiter() error: %v", err)
	}

	if err := lim.Reset(context.Background(), "ip:1.2.3.4"); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "limiter:tb:ip:1.2.3.4" {
		t.Errorf("deleted keys = %v", client.deleted)
	}
}

// fakeLimiter 固定返回预设结果的限流器
type fakeLimiter struct {
	result *LimitResult
	err    error
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (*LimitResult, error) {
	return f.result, f.err
}

func (f *fakeLimiter) AllowN(ctx context.Context, key string, n int64) (*LimitResult, error) {
	return f.result, f.err
}

func (f *fakeLimiter) Reset(ctx context.Context, key string) error { return nil }

func newLimitedRouter(lim Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GlobalRateLimitMiddleware(lim))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimitMiddleware_Allows(t *testing.T) {
	r := newLimitedRouter(&fakeLimiter{result: &LimitResult{Allowed: true, Remaining: 4}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("X-RateLimit-Remaining = %q, want 4", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitMiddleware_Blocks(t *testing.T) {
	r := newLimitedRouter(&fakeLimiter{result: &LimitResult{Allowed: false, RetryAfter: 3 * time.Second}})
	h := middleware.RequestID(r)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-429")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "3" {
		t.Errorf("Retry-After = %q, want 3", rec.Header().Get("Retry-After"))
	}

	var body resp.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.RequestID != "rid-429" {
		t.Errorf("envelope request_id = %q, want rid-429", body.RequestID)
	}
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	r := newLimitedRouter(&fakeLimiter{err: errors.New("redis down")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when limiter fails open", rec.Code)
	}
}
