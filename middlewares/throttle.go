package middlewares

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/BtJ-gogo/meta-back-end-developer/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Throttle limits requests per minute: authenticated callers are keyed
// by user id against userRPM, anonymous callers by client IP against
// anonRPM. A rate of 0 disables that class.
func Throttle(anonRPM, userRPM int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	get := func(key string, rpm int) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters[key]; ok {
			return l
		}
		l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)
		limiters[key] = l
		return l
	}

	return func(c *gin.Context) {
		key, rpm := "ip:"+c.ClientIP(), anonRPM
		if u := utils.Principal(c); u != nil {
			key, rpm = fmt.Sprintf("user:%d", u.ID), userRPM
		}
		if rpm <= 0 {
			c.Next()
			return
		}
		if !get(key, rpm).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "request was throttled"})
			c.Abort()
			return
		}
		c.Next()
	}
}
