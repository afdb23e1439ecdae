package handlers

import (
	"strings"

	"resident_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey = "resident_session"
	ctxTokenKey   = "resident_token"
)

// RequireSession resolves the bearer token to an open resident session and
// stores both on the request context.
func RequireSession(manager usecase.ISessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			writeError(c, errUnauthorized)
			return
		}

		session, err := manager.Resume(token)
		if err != nil {
			writeError(c, mapSessionError(err))
			return
		}

		c.Set(ctxSessionKey, session)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func sessionFrom(c *gin.Context) (usecase.IResidentSession, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(usecase.IResidentSession)
	return s, ok
}
