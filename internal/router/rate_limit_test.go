package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"email":" Test@Example.com "}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Request.RemoteAddr = "1.2.3.4:5678"

	key := KeyByIPAndJSONField("email")(c)
	if key != "test@example.com|1.2.3.4" {
		t.Fatalf("key want test@example.com|1.2.3.4 got %s", key)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("read body after key extraction failed: %v", err)
	}
	if !strings.Contains(string(body), "Test@Example.com") {
		t.Fatalf("request body should be restored after reading field")
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("expected handler response body, got %s", w.Body.String())
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "uint8", input: uint8(12), want: 12, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}

func TestRateLimitMiddlewareMemoryFallbackBlocks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{Prefix: "test", WindowSeconds: 60, MaxRequests: 1, BlockSeconds: 120}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if !strings.Contains(first.Body.String(), `"ok":true`) {
		t.Fatalf("first request should pass, got %s", first.Body.String())
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if !strings.Contains(second.Body.String(), `"status_code":429`) {
		t.Fatalf("second request should be limited, got %s", second.Body.String())
	}
}

func TestMemoryLimiterBlockWindow(t *testing.T) {
	limiter := newMemoryLimiter(RateLimitRule{WindowSeconds: 60, MaxRequests: 2, BlockSeconds: 300})
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.allow("k", now); !ok {
			t.Fatalf("attempt %d should pass", i+1)
		}
	}
	ok, wait := limiter.allow("k", now)
	if ok || wait != 300 {
		t.Fatalf("third attempt want blocked for 300s, got ok=%v wait=%d", ok, wait)
	}
	ok, wait = limiter.allow("k", now.Add(100*time.Second))
	if ok || wait != 200 {
		t.Fatalf("still blocked want wait 200 got ok=%v wait=%d", ok, wait)
	}
	if ok, _ := limiter.allow("k", now.Add(301*time.Second)); !ok {
		t.Fatalf("attempt after block should pass")
	}
	if ok, _ := limiter.allow("other", now); !ok {
		t.Fatalf("other key should not share budget")
	}
}
