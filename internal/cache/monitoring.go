package cache

import (
	"errors"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/mgfilms/site-service/internal/utils/response"
)

// CacheStats represents cache statistics
type CacheStats struct {
	RedisConnected bool     `json:"redis_connected"`
	ContentKeys    int      `json:"content_keys"`
	SEOKeys        int      `json:"seo_keys"`
	RateLimitKeys  int      `json:"rate_limit_keys"`
	CacheKeys      []string `json:"cache_keys_sample"`
	KeyCount       int      `json:"total_keys"`
}

func countKeys(r *http.Request, redisClient *redis.Client, pattern string, sample *[]string) int {
	n := 0
	iter := redisClient.Scan(r.Context(), 0, pattern, 100).Iterator()
	for iter.Next(r.Context()) {
		n++
		if len(*sample) < 10 {
			*sample = append(*sample, iter.Val())
		}
	}
	return n
}

// GetCacheStats returns cache statistics
// @Summary Cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/cache/stats [get]
func GetCacheStats(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := CacheStats{
			RedisConnected: true,
			CacheKeys:      []string{},
		}

		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			stats.RedisConnected = false
			response.WriteJSON(w, http.StatusOK, response.RequestOK("Cache stats retrieved", stats))
			return
		}

		stats.ContentKeys = countKeys(r, redisClient, ContentPattern, &stats.CacheKeys)
		stats.SEOKeys = countKeys(r, redisClient, SEOPattern, &stats.CacheKeys)
		stats.RateLimitKeys = countKeys(r, redisClient, RateLimitPattern, &stats.CacheKeys)

		if dbSize, err := redisClient.DBSize(r.Context()).Result(); err == nil {
			stats.KeyCount = int(dbSize)
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Cache stats retrieved", stats))
	}
}

// ClearCache endpoint for administrative purposes
// @Summary Clear cached data
// @Tags cache
// @Produce json
// @Param type query string false "content, seo, ratelimit or all" default(content)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/cache [delete]
func ClearCache(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patterns []string
		switch r.URL.Query().Get("type") {
		case "", "content":
			patterns = []string{ContentPattern}
		case "seo":
			patterns = []string{SEOPattern}
		case "ratelimit":
			patterns = []string{RateLimitPattern}
		case "all":
			patterns = []string{ContentPattern, SEOPattern, RateLimitPattern}
		default:
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(
				errors.New("type must be one of content, seo, ratelimit, all")))
			return
		}

		var deleted int64
		for _, pattern := range patterns {
			n, err := DeletePattern(r.Context(), redisClient, pattern)
			if err != nil {
				response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
				return
			}
			deleted += n
		}

		result := map[string]interface{}{
			"patterns":     patterns,
			"deleted_keys": deleted,
		}
		response.WriteJSON(w, http.StatusOK, response.RequestOK("Cache cleared successfully", result))
	}
}
