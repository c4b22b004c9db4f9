package auth

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/metrics"
	"github.com/skillsenselab/todo-api/internal/server"
)

// maxUsersFileSize caps the reset-users upload.
const maxUsersFileSize = 1024 * 1024

// Handler exposes the /auth route group.
type Handler struct {
	engine     *Engine
	controller *Controller
	provider   *Provider
}

// NewHandler creates the auth route handler.
func NewHandler(engine *Engine, controller *Controller, provider *Provider) *Handler {
	return &Handler{engine: engine, controller: controller, provider: provider}
}

// Register mounts the auth routes. None of them sit behind the gateway:
// signup/login/refresh must be reachable without credentials, and the reset
// endpoints are admin-style by design.
func (h *Handler) Register(r gin.IRouter) {
	grp := r.Group("/auth")
	grp.POST("/signup", h.signup)
	grp.POST("/login", h.login)
	grp.POST("/logout", h.logout)
	grp.POST("/refresh", h.refresh)
	grp.POST("/reset", h.resetConfig)
	grp.POST("/reset-users", h.resetUsers)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Username and password are required"))
		return
	}

	cred, err := h.engine.Signup(req.Username, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.respondWithCredential(c, http.StatusCreated, "Signup successful", cred)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Username and password are required"))
		return
	}

	cred, err := h.engine.Login(req.Username, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	h.respondWithCredential(c, http.StatusOK, "Login successful", cred)
}

func (h *Handler) refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Refresh token is required"))
		return
	}

	pair, err := h.engine.Refresh(req.RefreshToken)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *Handler) logout(c *gin.Context) {
	switch h.provider.Method() {
	case MethodJWT:
		h.logoutJWT(c)
	case MethodSession:
		h.logoutSession(c)
	default:
		server.RespondWithError(c,
			apperrors.MethodUnavailable("Logout", h.provider.Method().displayName()))
	}
}

func (h *Handler) logoutJWT(c *gin.Context) {
	accessToken, ok := BearerToken(c.GetHeader("Authorization"))
	if !ok {
		server.RespondWithError(c,
			apperrors.Unauthorized("Access token is required in Authorization header"))
		return
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		server.RespondWithError(c,
			apperrors.Validation("Refresh token is required in request body"))
		return
	}

	if err := h.engine.LogoutJWT(accessToken, req.RefreshToken); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondMessage(c, http.StatusOK, "Logout successful")
}

func (h *Handler) logoutSession(c *gin.Context) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		server.RespondWithError(c, apperrors.Unauthorized("Valid session required"))
		return
	}

	if err := h.engine.LogoutSession(cookie); err != nil {
		server.RespondWithError(c, err)
		return
	}
	clearSessionCookie(c)
	server.RespondMessage(c, http.StatusOK, "Logout successful")
}

type resetConfigRequest struct {
	Auth Spec `json:"auth" binding:"required"`
}

func (h *Handler) resetConfig(c *gin.Context) {
	var req resetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c,
			apperrors.Validation("Request body must contain an 'auth' configuration object"))
		return
	}

	cfg, err := h.controller.UpdateConfig(req.Auth)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	metrics.CredentialResets.WithLabelValues("config").Inc()
	// Secrets are never echoed back.
	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication configuration updated successfully",
		"auth":    gin.H{"method": string(cfg.Method)},
	})
}

type resetUsersFile struct {
	Users []UserSpec `json:"users"`
}

func (h *Handler) resetUsers(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("No users file was provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUsersFileSize+1))
	if err != nil || len(data) > maxUsersFileSize {
		server.RespondWithError(c, apperrors.Validation("Users file is too large. Maximum size is 1MB"))
		return
	}

	var payload resetUsersFile
	if err := json.Unmarshal(data, &payload); err != nil {
		server.RespondWithError(c, apperrors.Validation("Users file must contain valid JSON"))
		return
	}

	summary, err := h.controller.ResetUsers(payload.Users)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	metrics.CredentialResets.WithLabelValues("users").Inc()
	c.JSON(http.StatusOK, summary)
}

// respondWithCredential renders the method-dependent response shape of
// signup and login, emitting the session cookie when one was issued.
func (h *Handler) respondWithCredential(c *gin.Context, status int, message string, cred *Credential) {
	if cred.SessionCookie != "" {
		setSessionCookie(c, cred.SessionCookie)
	}
	if cred.Tokens != nil {
		c.JSON(status, gin.H{
			"message":       message,
			"access_token":  cred.Tokens.AccessToken,
			"refresh_token": cred.Tokens.RefreshToken,
		})
		return
	}
	server.RespondMessage(c, status, message)
}

func setSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
