package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const RateLimitMessage = "Too many login attempts from this IP, please try again later."

// LoginLimiter ограничивает число попыток логина с одного адреса в скользящем окне.
// Счетчики чистятся фоновой горутиной, чтобы мапа не росла бесконечно.
type LoginLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string][]time.Time
}

func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
	go l.cleanup()
	return l
}

// Allow регистрирует попытку для ключа key и сообщает, укладывается ли она в лимит.
// Отклоненные попытки тоже считаются.
func (l *LoginLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := pruneBefore(l.attempts[key], now.Add(-l.window))
	recent = append(recent, now)
	l.attempts[key] = recent

	return len(recent) <= l.limit
}

func (l *LoginLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		deadline := time.Now().Add(-l.window)

		l.mu.Lock()
		for key, stamps := range l.attempts {
			recent := pruneBefore(stamps, deadline)
			if len(recent) == 0 {
				delete(l.attempts, key)
				continue
			}
			l.attempts[key] = recent
		}
		l.mu.Unlock()
	}
}

func pruneBefore(stamps []time.Time, deadline time.Time) []time.Time {
	var recent []time.Time
	for _, stamp := range stamps {
		if stamp.After(deadline) {
			recent = append(recent, stamp)
		}
	}
	return recent
}

// Middleware отклоняет запрос до обращения к хранилищу, если лимит попыток исчерпан.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP(), time.Now()) {
			c.String(http.StatusTooManyRequests, RateLimitMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
