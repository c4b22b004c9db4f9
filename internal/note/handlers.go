package note

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/server"
)

// Handler exposes the /notes route group.
type Handler struct {
	store *Store
}

// NewHandler creates the note route handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the note routes onto a (gateway-protected) group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("", h.upload)
	r.GET("/:name", h.download)
	r.DELETE("/:name", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("No note file was provided"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		server.RespondWithError(c, apperrors.Validation("No note file was selected"))
		return
	}
	if !strings.HasSuffix(header.Filename, ".txt") {
		server.RespondWithError(c, apperrors.Validation("Notes must be in .txt format"))
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxNoteSize+1))
	if err != nil {
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	if len(content) > MaxNoteSize {
		server.RespondWithError(c, apperrors.Validation("Note is too large. Maximum size is 1MB"))
		return
	}
	if err := ValidateContent(content); err != nil {
		server.RespondWithError(c, apperrors.Validation(capitalize(err.Error())))
		return
	}

	name, err := h.store.Save(header.Filename, content)
	if err != nil {
		if errors.Is(err, ErrBadName) {
			server.RespondWithError(c, apperrors.Validation("Invalid note name"))
			return
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Note saved successfully",
		"note_name": name,
	})
}

func (h *Handler) download(c *gin.Context) {
	name := c.Param("name")
	content, err := h.store.Read(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			server.RespondWithError(c, apperrors.NotFound("Note not found"))
			return
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.store.Delete(c.Param("name")); err != nil {
		if errors.Is(err, ErrNotFound) {
			server.RespondWithError(c, apperrors.NotFound("Note not found"))
			return
		}
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
