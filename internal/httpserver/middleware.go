package httpserver

import (
	"net/http"
	"sync"
	"time"

	"developerhorizon/internal/service/session"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const sessionContextKey = "sessionID"

// sessionMiddleware reads the session cookie, issuing a fresh id when the
// cookie is absent or does not validate. Every /api request runs with a
// session id in the gin context.
func sessionMiddleware(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err != nil || sessions.Validate(id) != nil {
			id = sessions.Issue()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, id, session.CookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

// rate limit tiers. Order submission and checkout mutation sit on the strict
// tier because they fan out to the print provider and the payments service.
var (
	generalTier = rate.Limit(20)
	strictTier  = rate.Limit(2)

	generalBurst = 40
	strictBurst  = 5
)

type clientLimiter struct {
	general  *rate.Limiter
	strict   *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{clients: make(map[string]*clientLimiter)}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) get(ip string) *clientLimiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{
			general: rate.NewLimiter(generalTier, generalBurst),
			strict:  rate.NewLimiter(strictTier, strictBurst),
		}
		rl.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl
}

func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, cl := range rl.clients {
			if time.Since(cl.lastSeen) > 3*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func strictPath(c *gin.Context) bool {
	p := c.FullPath()
	if c.Request.Method == http.MethodGet {
		return false
	}
	return p == "/api/orders" || p == "/api/orders/status" ||
		p == "/api/checkout" || p == "/api/checkout/shipping"
}

func (rl *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cl := rl.get(c.ClientIP())
		lim := cl.general
		if strictPath(c) {
			lim = cl.strict
		}
		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
