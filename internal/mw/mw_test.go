package mw

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"site-uptime-backend/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientLimiter(t *testing.T) {
	l := NewClientLimiter(rate.Limit(1), 2, time.Minute)
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "buckets are per client")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refills per second")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, l.Sweep())
	assert.Empty(t, l.visitors)
}

func TestRateLimit_UsesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewClientLimiter(rate.Limit(1), 1, time.Minute), "X-Real-IP"))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", ip)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2"))
}

func TestCacheFiles(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(CacheFiles(cache.New(time.Minute, time.Minute), "text/csv", time.Minute))
	r.GET("/file", func(c *gin.Context) {
		calls++
		c.Data(http.StatusOK, "text/csv", []byte("a,b\n"))
	})
	r.GET("/status", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"status": "running"})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/file", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a,b\n", w.Body.String())
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 3, calls, "json responses are not cached")
}

func TestCacheFiles_ReplaysDisposition(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(RequestLog(logger.Nop()), CacheFiles(cache.New(time.Minute, time.Minute), "text/csv", time.Minute))
	r.GET("/file", func(c *gin.Context) {
		calls++
		c.Header("Content-Disposition", `attachment; filename="report_1.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte("a,b\n"))
	})

	ids := map[string]bool{}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/file", nil))
		assert.Equal(t, `attachment; filename="report_1.csv"`, w.Header().Get("Content-Disposition"))
		ids[w.Header().Get(HeaderRequestID)] = true
	}
	assert.Equal(t, 1, calls)
	assert.Len(t, ids, 2, "request ids are never replayed from cache")
}

func TestTeeWriter_Overflow(t *testing.T) {
	r := gin.New()
	var tw *teeWriter
	r.GET("/big", func(c *gin.Context) {
		tw = &teeWriter{ResponseWriter: c.Writer, limit: 4}
		c.Writer = tw
		c.Data(http.StatusOK, "text/csv", []byte("abc"))
		c.Writer.Write([]byte("def"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/big", nil))
	assert.Equal(t, "abcdef", w.Body.String(), "the client still gets the full body")
	assert.True(t, tw.overflow)
	assert.Zero(t, tw.buf.Len())
}

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	base, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestLog(base))
	r.GET("/ping", func(c *gin.Context) {
		logger.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"request_id":"req-1"`)))
	assert.Contains(t, buf.String(), `"http_status":204`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36, "a uuid is minted when absent")
}
