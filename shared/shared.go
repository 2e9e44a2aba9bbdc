package shared

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"sunstone/shared/cache"
	"sunstone/shared/dto"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins a prefix and its parts into a namespaced cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a cache key from the list query so each
// page/filter combination caches independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams) string {
	encoded := params.Encode()
	if encoded == "" {
		encoded = "all"
	}

	return BuildCacheKey(prefix, encoded)
}

// InvalidateCaches clears every cache entry under the given prefix. Errors
// are logged and swallowed; a stale entry expires by TTL anyway.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, BuildCacheKey(prefix, "*")); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache prefix")
	}
}
