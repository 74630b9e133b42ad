package mw

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// maxCachedFile bounds the size of a single cached download.
const maxCachedFile = 8 << 20

// fileEntry is a finished download kept in memory.
type fileEntry struct {
	contentType string
	disposition string
	body        []byte
}

// teeWriter copies what the handler writes into buf until limit is exceeded.
type teeWriter struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (w *teeWriter) keep(p []byte) {
	if w.overflow {
		return
	}
	if w.buf.Len()+len(p) > w.limit {
		w.overflow = true
		w.buf.Reset()
		return
	}
	w.buf.Write(p)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.keep(b)
	return w.ResponseWriter.Write(b)
}

func (w *teeWriter) WriteString(s string) (int, error) {
	w.keep([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

// CacheFiles serves repeated GETs of immutable file responses from memory,
// keyed by path. Only 200 responses whose content type starts with
// contentType are kept, so status answers for unfinished jobs always reach
// the handler.
func CacheFiles(store *cache.Cache, contentType string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if v, found := store.Get(key); found {
			entry := v.(fileEntry)
			if entry.disposition != "" {
				c.Header("Content-Disposition", entry.disposition)
			}
			cacheRequestsTotal.WithLabelValues("hit").Inc()
			c.Data(http.StatusOK, entry.contentType, entry.body)
			c.Abort()
			return
		}
		cacheRequestsTotal.WithLabelValues("miss").Inc()

		tw := &teeWriter{ResponseWriter: c.Writer, limit: maxCachedFile}
		c.Writer = tw
		c.Next()

		ct := tw.Header().Get("Content-Type")
		if tw.Status() != http.StatusOK || tw.overflow || !strings.HasPrefix(ct, contentType) {
			return
		}
		store.Set(key, fileEntry{
			contentType: ct,
			disposition: tw.Header().Get("Content-Disposition"),
			body:        bytes.Clone(tw.buf.Bytes()),
		}, ttl)
	}
}
