package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit caps requests with a single process-wide fixed window. The
// counter resets when the window elapses; requests past the cap get 429.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	count := 0
	reset := time.Now().Add(window)

	return func(c *gin.Context) {
		mu.Lock()
		now := time.Now()
		if now.After(reset) {
			count = 0
			reset = now.Add(window)
		}
		count++
		over := count > max
		mu.Unlock()

		if over {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			return
		}
		c.Next()
	}
}
