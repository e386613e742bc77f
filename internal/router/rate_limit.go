package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/zephyra-admin/internal/http/response"
	"github.com/zephyra-admin/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int // 超限后的封禁时长，0 表示按窗口剩余时间
	MessageKey    string
}

var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware 频率限制中间件，未配置 Redis 时退回进程内限流
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	local := newMemoryLimiter(rule)
	return func(c *gin.Context) {
		if rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		if client == nil {
			if allowed, wait := local.allow(key, time.Now()); !allowed {
				abortRateLimited(c, rule, wait)
				return
			}
			c.Next()
			return
		}

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, rule.WindowSeconds).Result()
		if err != nil {
			abortRateLimitUnavailable(c)
			return
		}

		values, ok := result.([]interface{})
		if !ok || len(values) < 2 {
			abortRateLimitUnavailable(c)
			return
		}
		count, ok := toInt64(values[0])
		if !ok {
			abortRateLimitUnavailable(c)
			return
		}
		ttlSeconds, _ := toInt64(values[1])
		if count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if count == int64(rule.MaxRequests)+1 && rule.BlockSeconds > waitSeconds {
				_ = client.Expire(c.Request.Context(), key, time.Duration(rule.BlockSeconds)*time.Second).Err()
				waitSeconds = rule.BlockSeconds
			}
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			abortRateLimited(c, rule, waitSeconds)
			return
		}

		c.Next()
	}
}

func abortRateLimitUnavailable(c *gin.Context) {
	msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
	response.Error(c, response.CodeInternal, msg)
	c.Abort()
}

func abortRateLimited(c *gin.Context, rule RateLimitRule, waitSeconds int) {
	if waitSeconds < 1 {
		waitSeconds = 1
	}
	msgKey := strings.TrimSpace(rule.MessageKey)
	if msgKey == "" {
		msgKey = "error.rate_limited"
	}
	msg := i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds)
	response.Error(c, response.CodeTooManyRequests, msg)
	c.Abort()
}

const memoryLimiterSweepSize = 4096

type limiterEntry struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

// memoryLimiter 单进程令牌桶限流，多实例部署时各自计数
type memoryLimiter struct {
	mu      sync.Mutex
	rule    RateLimitRule
	entries map[string]*limiterEntry
}

func newMemoryLimiter(rule RateLimitRule) *memoryLimiter {
	return &memoryLimiter{rule: rule, entries: make(map[string]*limiterEntry)}
}

func (m *memoryLimiter) allow(key string, now time.Time) (bool, int) {
	window := time.Duration(m.rule.WindowSeconds) * time.Second
	block := time.Duration(m.rule.BlockSeconds) * time.Second
	if block <= 0 {
		block = window
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) >= memoryLimiterSweepSize {
		m.sweep(now, window+block)
	}
	entry, ok := m.entries[key]
	if !ok {
		every := window / time.Duration(m.rule.MaxRequests)
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(every), m.rule.MaxRequests)}
		m.entries[key] = entry
	}
	entry.lastSeen = now
	if now.Before(entry.blockedUntil) {
		return false, ceilSeconds(entry.blockedUntil.Sub(now))
	}
	if entry.limiter.AllowN(now, 1) {
		return true, 0
	}
	entry.blockedUntil = now.Add(block)
	return false, ceilSeconds(block)
}

func (m *memoryLimiter) sweep(now time.Time, idle time.Duration) {
	for key, entry := range m.entries {
		if now.Sub(entry.lastSeen) > idle && !now.Before(entry.blockedUntil) {
			delete(m.entries, key)
		}
	}
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 IP + JSON 字段作为限流 key
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(readJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	value, ok := payload[field]
	if !ok {
		return ""
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	default:
		return 0, false
	}
}
