package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/session"
)

const sessionKey = "session"

// cookieMaxAge outlives any session TTL; expiry is enforced by the store.
const cookieMaxAge = 3600 * 24

var hashingSalt = func() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}()

// hashIP keeps client addresses out of the logs while still letting one
// visitor's requests be correlated.
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func isAsset(p string) bool {
	switch path.Ext(p) {
	case ".png", ".jpg", ".jpeg", ".svg", ".webp", ".ico":
		return true
	}
	return strings.Contains(p, "/static/")
}

// requestLogger logs every request except static files and the health check.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if isAsset(path) || path == "/healthz" {
			return
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", hashIP(c.ClientIP())),
		}
		if len(c.Errors) > 0 {
			log.Warn("Request failed", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.Debug("Request", fields...)
	}
}

// sessionMiddleware attaches the visitor's session, creating one and setting
// the cookie when the request carries none or an expired one. Only the page
// itself starts sessions.
func sessionMiddleware(store *session.Store, cookiePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		sess, created := store.Acquire(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, sess.ID, cookieMaxAge, cookiePath, "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// requireSession attaches a known session and answers 204 otherwise, so
// requests that never loaded the page cannot mount one.
func requireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		sess, ok := store.Get(id)
		if !ok {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionOf(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
