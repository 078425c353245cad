package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/ratelimit"
	"github.com/mgfilms/site-service/internal/utils/response"
)

const (
	ActionLogin     = "login"
	ActionInquiries = "inquiries"
)

type RateLimitConfig struct {
	limiters map[string]*ratelimit.TokenBucket
	proxies  TrustedProxies
}

// NewRateLimitConfig builds one bucket per public write action. A nil
// client disables rate limiting.
func NewRateLimitConfig(redisClient *redis.Client, cfg config.RateLimit) *RateLimitConfig {
	rlc := &RateLimitConfig{
		limiters: make(map[string]*ratelimit.TokenBucket),
	}

	proxies, err := ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		slog.Warn("Ignoring trusted proxies", slog.String("error", err.Error()))
	}
	rlc.proxies = proxies

	if redisClient == nil {
		return rlc
	}

	if cfg.LoginPerMinute > 0 {
		n := int64(cfg.LoginPerMinute)
		rlc.limiters[ActionLogin] = ratelimit.NewTokenBucket(redisClient, n, n)
	}
	if cfg.InquiriesPerMinute > 0 {
		n := int64(cfg.InquiriesPerMinute)
		rlc.limiters[ActionInquiries] = ratelimit.NewTokenBucket(redisClient, n, n)
	}

	return rlc
}

// ClientIP is the address a request is counted against.
func (rlc *RateLimitConfig) ClientIP(r *http.Request) string {
	return rlc.proxies.ClientIP(r)
}

func setRateLimitHeaders(w http.ResponseWriter, limiter *ratelimit.TokenBucket, remaining int64) {
	w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limiter.Capacity(), 10))
	w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(limiter.Window().Seconds())))
}

// RateLimitMiddleware limits action per client IP. Redis failures let the
// request through.
func (rlc *RateLimitConfig) RateLimitMiddleware(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter, exists := rlc.limiters[action]
			if !exists {
				next.ServeHTTP(w, r)
				return
			}

			ip := rlc.ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip, action)
			if err != nil {
				slog.Warn("rate limit check failed",
					slog.String("action", action),
					slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			remaining, _ := limiter.GetRemaining(r.Context(), ip, action)
			setRateLimitHeaders(w, limiter, remaining)

			if !allowed {
				response.WriteJSON(w, http.StatusTooManyRequests, response.GeneralError(
					errors.New("too many requests, try again in a minute")))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitedHandler wraps a handler with rate limiting for a specific action
func (rlc *RateLimitConfig) RateLimitedHandler(action string, handler http.HandlerFunc) http.Handler {
	return rlc.RateLimitMiddleware(action)(handler)
}

// Reset refills the action bucket for the request's client. Login calls it
// after a successful sign-in so earlier typos stop counting.
func (rlc *RateLimitConfig) Reset(r *http.Request, action string) {
	limiter, exists := rlc.limiters[action]
	if !exists {
		return
	}
	if err := limiter.Reset(r.Context(), rlc.ClientIP(r), action); err != nil {
		slog.Warn("rate limit reset failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}
