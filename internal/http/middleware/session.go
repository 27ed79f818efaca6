// README: Session middleware; resolves the visitor session from its cookie for every page request.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mftnb/internal/modules/booking"
)

const (
	sessionKey       = "mftnb.session"
	sessionCookieKey = "mftnb.session_cookie"
)

type SessionLoader interface {
	Load(ctx context.Context, id string) (*booking.Session, error)
}

// SessionCookie describes the cookie carrying the session id.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func (sc SessionCookie) write(c *gin.Context, id string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, id, maxAge, "/", "", sc.Secure, true)
}

func Session(loader SessionLoader, cookie SessionCookie, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookie.Name)
		sess, err := loader.Load(c.Request.Context(), id)
		if err != nil {
			logger.Error("load session", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		cookie.write(c, sess.ID, int(cookie.MaxAge.Seconds()))
		c.Set(sessionKey, sess)
		c.Set(sessionCookieKey, cookie)
		c.Next()
	}
}

// CurrentSession returns the session loaded by Session, or nil outside it.
func CurrentSession(c *gin.Context) *booking.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*booking.Session)
	return sess
}

// EndSession expires the session cookie so the next request starts afresh.
func EndSession(c *gin.Context) {
	v, ok := c.Get(sessionCookieKey)
	if !ok {
		return
	}
	cookie := v.(SessionCookie)
	cookie.write(c, "", -1)
	c.Set(sessionKey, nil)
}
