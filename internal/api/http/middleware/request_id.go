package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type requestIDKey struct{}

// RequestID ensures every request carries a stable id: it honors an
// incoming X-Request-Id, otherwise generates one, echoes it back in the
// response header and logs method/path/status/latency on completion.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = newRequestID()
		}

		c.Set("request_id", rid)
		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.Printf("[req] id=%s method=%s path=%s status=%d latency=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// FromContext extracts the request id from a standard context.
func FromContext(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err == nil {
		return hex.EncodeToString(b)
	}
	return time.Now().Format("20060102T150405.000000000")
}
