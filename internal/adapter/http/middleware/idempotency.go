package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// HeaderRequestID carries the client-chosen idempotency key. Requests
	// without it pass through unguarded.
	HeaderRequestID = "X-Request-Id"

	// How long the in-progress lock holds before the handler must have
	// finished and written the final entry.
	provisionalLockTTL = 60 * time.Second
)

type idempEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	RequestID  string    `json:"request_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a mutating request arrives
// twice with the same X-Request-Id, and rejects key reuse with a different
// body. Key = method + route + request id.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		reqID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if reqID == "" {
			c.Next()
			return
		}
		if !validReqID(reqID) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid X-Request-Id format"})
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		bhash := bodyHash(body)

		key := buildKey(c.Request.Method, c.FullPath(), reqID)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		entry := idempEntry{
			InProgress: true,
			BodySHA256: bhash,
			RequestID:  reqID,
			CreatedAt:  time.Now().UTC(),
		}
		ok, err := provisionalSet(ctx, rdb, key, entry)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency store unavailable"})
			return
		}
		if !ok {
			cur, errLoad := loadEntry(ctx, rdb, key)
			if errLoad != nil {
				log.Printf("[idempotency][middleware] failed loading entry key=%s err=%v", key, errLoad)
			}

			if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "X-Request-Id reused with different body"})
				return
			}
			if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
				c.Data(cur.Code, "application/json", cur.Body)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request is already in progress"})
			return
		}

		rec := &respRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		final := idempEntry{
			InProgress: false,
			Code:       rec.Status(),
			Body:       rec.buf.Bytes(),
			BodySHA256: bhash,
			RequestID:  reqID,
			CreatedAt:  time.Now().UTC(),
		}
		if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
			log.Printf("[idempotency][middleware] failed saving entry key=%s err=%v", key, err)
		}
	}
}
