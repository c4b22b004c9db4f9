package todo

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/apperrors"
	"github.com/skillsenselab/todo-api/internal/server"
)

// Handler exposes the /todos route group.
type Handler struct {
	store *Store
}

// NewHandler creates the todo route handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the todo routes onto a (gateway-protected) group.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("", h.list)
	r.POST("", h.create)
	r.GET("/:id", h.get)
	r.PUT("/:id", h.replace)
	r.PATCH("/:id", h.patch)
	r.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	var filter ListFilter

	if v, ok := c.GetQuery("done"); ok {
		done, err := strconv.ParseBool(v)
		if err != nil {
			server.RespondWithError(c, apperrors.Validation("Query parameter 'done' must be true or false"))
			return
		}
		filter.Done = &done
	}
	filter.TitlePrefix = c.Query("title")

	var err error
	if filter.Page, err = positiveIntQuery(c, "page"); err != nil {
		server.RespondWithError(c, err)
		return
	}
	if filter.Limit, err = positiveIntQuery(c, "limit"); err != nil {
		server.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.store.List(filter))
}

func (h *Handler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	t, ok := h.store.Get(id)
	if !ok {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) create(c *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Done        bool    `json:"done"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil || *req.Title == "" {
		server.RespondWithError(c, apperrors.Validation("Invalid request. 'title' is required."))
		return
	}

	t := h.store.Add(*req.Title, req.Done, req.Description)
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) replace(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Done        *bool   `json:"done"`
		Description *string `json:"description"`
	}
	bindErr := c.ShouldBindJSON(&req)

	// Existence is checked before shape so a bad payload against a missing
	// item still reports 404, matching the legacy behavior.
	if _, ok := h.store.Get(id); !ok {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	if bindErr != nil || req.Title == nil || req.Done == nil || req.Description == nil {
		server.RespondWithError(c, apperrors.Validation(
			"Invalid request. 'title', 'done', and 'description' fields are required."))
		return
	}

	t, ok := h.store.Replace(id, *req.Title, *req.Done, req.Description)
	if !ok {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) patch(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Done        *bool   `json:"done"`
		Description *string `json:"description"`
	}
	bindErr := c.ShouldBindJSON(&req)

	if _, ok := h.store.Get(id); !ok {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	if bindErr != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request."))
		return
	}

	t, ok := h.store.Patch(id, req.Title, req.Done, req.Description)
	if !ok {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	if !h.store.Delete(id) {
		server.RespondWithError(c, apperrors.NotFound("Todo not found"))
		return
	}
	server.RespondMessage(c, http.StatusOK, "Todo deleted successfully")
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.NotFound("Todo not found")
	}
	return id, nil
}

func positiveIntQuery(c *gin.Context, name string) (int, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, apperrors.Validationf("Query parameter '%s' must be a positive integer", name)
	}
	return n, nil
}
