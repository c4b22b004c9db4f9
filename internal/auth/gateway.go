package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/metrics"
)

// ContextUserKey is the gin context key under which the gateway stores the
// authenticated username for jwt and session requests.
const ContextUserKey = "auth_username"

// Gateway returns the middleware guarding a protected route group. It
// dispatches on a fresh config snapshot per request, so a runtime method
// switch is observed immediately with no re-registration. Admission has no
// side effects; rejection aborts before the resource handler runs.
func Gateway(engine *Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := engine.provider.Snapshot()

		switch cfg.Method {
		case MethodNone:
			c.Next()
		case MethodAPIKey:
			admitAPIKey(c, cfg)
		case MethodJWT:
			admitJWT(c, engine)
		case MethodSession:
			admitSession(c, engine)
		default:
			// Unknown configured method is a server fault, not a client one.
			metrics.AuthRejections.WithLabelValues(string(cfg.Method), "misconfigured").Inc()
			reject(c, apperrors.ServerMisconfigured())
		}
	}
}

func admitAPIKey(c *gin.Context, cfg Config) {
	key := c.GetHeader("X-API-Key")
	if key == "" {
		metrics.AuthRejections.WithLabelValues(string(MethodAPIKey), "missing").Inc()
		reject(c, apperrors.Unauthorized("API key is required"))
		return
	}
	if key != cfg.APIKey {
		metrics.AuthRejections.WithLabelValues(string(MethodAPIKey), "mismatch").Inc()
		reject(c, apperrors.Unauthorized("Invalid API key"))
		return
	}
	c.Next()
}

func admitJWT(c *gin.Context, engine *Engine) {
	token, ok := BearerToken(c.GetHeader("Authorization"))
	if !ok {
		metrics.AuthRejections.WithLabelValues(string(MethodJWT), "missing").Inc()
		reject(c, apperrors.Unauthorized("JWT token is required"))
		return
	}

	claims, err := engine.VerifyAccessToken(token)
	if err != nil {
		metrics.AuthRejections.WithLabelValues(string(MethodJWT), "invalid").Inc()
		reject(c, err)
		return
	}

	c.Set(ContextUserKey, claims.Subject)
	c.Next()
}

func admitSession(c *gin.Context, engine *Engine) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		metrics.AuthRejections.WithLabelValues(string(MethodSession), "missing").Inc()
		reject(c, apperrors.Unauthorized("Valid session required"))
		return
	}

	username, err := engine.ResolveSession(cookie)
	if err != nil {
		metrics.AuthRejections.WithLabelValues(string(MethodSession), "invalid").Inc()
		reject(c, err)
		return
	}

	c.Set(ContextUserKey, username)
	c.Next()
}

// BearerToken extracts the token from an `Authorization: Bearer <t>` header.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func reject(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
