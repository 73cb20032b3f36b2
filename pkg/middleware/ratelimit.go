package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AuthRateLimit throttles login/signup attempts per client IP. Stale entries
// are dropped so the map does not grow without bound.
func AuthRateLimit() gin.HandlerFunc {
	clients := make(map[string]*clientLimiter)
	var mu sync.Mutex

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, exists := clients[ip]
		if !exists {
			cl = &clientLimiter{
				limiter: rate.NewLimiter(rate.Every(time.Second), 5),
			}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()

		for addr, entry := range clients {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(clients, addr)
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
