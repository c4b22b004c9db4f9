// Package docs serves the machine-readable API description. The
// authentication section reflects whichever method is live at request time.
package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/auth"
)

// Handler exposes GET /docs.
type Handler struct {
	provider *auth.Provider
}

// NewHandler creates the docs handler over the live auth config.
func NewHandler(provider *auth.Provider) *Handler {
	return &Handler{provider: provider}
}

// Register mounts the docs route. It is deliberately unauthenticated.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/docs", h.describe)
}

func (h *Handler) describe(c *gin.Context) {
	docs := gin.H{}
	if authDocs := h.authDocs(); authDocs != nil {
		docs["authentication"] = authDocs
	}

	docs["/todos"] = gin.H{
		"GET": gin.H{
			"description": "Fetch all TODO items with optional filtering and pagination.",
			"query_params": gin.H{
				"done":  "Filter by completion status (true/false).",
				"title": "Filter by TODO item title prefix.",
				"page":  "Page number for pagination (optional, starts at 1).",
				"limit": "Number of items per page (optional).",
			},
			"responses": gin.H{"200": "List of todo items"},
		},
		"POST": gin.H{
			"description": "Add a new TODO item.",
			"body_params": gin.H{
				"title":       "The TODO item title (required).",
				"done":        "Completion status (optional, default: false).",
				"description": "Detailed TODO item description (optional).",
			},
			"responses": gin.H{"201": "Created todo item", "400": "Invalid request (missing title)"},
		},
	}
	docs["/todos/{id}"] = gin.H{
		"GET": gin.H{
			"description": "Fetch a single TODO item by its ID.",
			"responses":   gin.H{"200": "Todo item", "404": "Todo not found"},
		},
		"PUT": gin.H{
			"description": "Replace an existing TODO item by its ID (all fields required).",
			"body_params": gin.H{
				"title":       "The TODO item title (required).",
				"done":        "Completion status (required).",
				"description": "Detailed TODO item description (required).",
			},
			"responses": gin.H{"200": "Updated todo item", "400": "Invalid request", "404": "Todo not found"},
		},
		"PATCH": gin.H{
			"description": "Update part of a TODO item by its ID (any field optional).",
			"responses":   gin.H{"200": "Updated todo item", "400": "Invalid request", "404": "Todo not found"},
		},
		"DELETE": gin.H{
			"description": "Delete a TODO item by its ID.",
			"responses":   gin.H{"200": "Todo deleted", "404": "Todo not found"},
		},
	}
	docs["/notes"] = gin.H{
		"POST": gin.H{
			"description": "Upload a plain-text note (.txt, max 1MB) as multipart field 'file'.",
			"responses":   gin.H{"201": "Note saved", "400": "Invalid note"},
		},
	}
	docs["/notes/{name}"] = gin.H{
		"GET": gin.H{
			"description": "Download a note as a text/plain attachment.",
			"responses":   gin.H{"200": "Note content", "404": "Note not found"},
		},
		"DELETE": gin.H{
			"description": "Delete a note.",
			"responses":   gin.H{"204": "Note deleted", "404": "Note not found"},
		},
	}
	docs["/auth/reset"] = gin.H{
		"POST": gin.H{
			"description": "Replace the live authentication configuration and wipe all issued credentials.",
			"body_params": gin.H{
				"auth": "{method: none|api_key|jwt|session, api_key?, secret?}",
			},
			"responses": gin.H{"200": "Configuration updated", "400": "Invalid configuration"},
		},
	}
	docs["/auth/reset-users"] = gin.H{
		"POST": gin.H{
			"description": "Replace the entire user registry from an uploaded JSON file and wipe all issued credentials.",
			"responses":   gin.H{"200": "Users reset", "400": "Invalid users file"},
		},
	}

	c.JSON(http.StatusOK, docs)
}

// authDocs describes the currently active method, or nil when auth is off.
func (h *Handler) authDocs() gin.H {
	switch h.provider.Method() {
	case auth.MethodAPIKey:
		return gin.H{
			"method":      "api_key",
			"description": "All /todos and /notes requests require the X-API-Key header.",
		}
	case auth.MethodJWT:
		return gin.H{
			"method":      "jwt",
			"description": "All /todos and /notes requests require an Authorization: Bearer <access_token> header.",
			"endpoints": gin.H{
				"/auth/signup":  "POST {username, password} — register and receive tokens.",
				"/auth/login":   "POST {username, password} — receive access and refresh tokens.",
				"/auth/refresh": "POST {refresh_token} — rotate the pair; refresh tokens are single-use.",
				"/auth/logout":  "POST with Authorization header and {refresh_token} — revoke both tokens.",
			},
		}
	case auth.MethodSession:
		return gin.H{
			"method":      "session",
			"description": "All /todos and /notes requests require the session cookie issued by /auth/login.",
			"endpoints": gin.H{
				"/auth/signup": "POST {username, password} — register and start a session.",
				"/auth/login":  "POST {username, password} — start a session.",
				"/auth/logout": "POST — end the session and invalidate its cookie.",
			},
		}
	default:
		return nil
	}
}
