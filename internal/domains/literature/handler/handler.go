package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/literature/model"
	"jaalakam-backend/internal/domains/literature/service"
	"jaalakam-backend/internal/shared/response"
)

type LiteratureHandler struct {
	literatureService service.ServiceInterface
}

func NewLiteratureHandler(literatureService service.ServiceInterface) *LiteratureHandler {
	return &LiteratureHandler{literatureService: literatureService}
}

func literatureID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid literature ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateLiterature creates a draft
// POST /api/v1/literature
func (h *LiteratureHandler) CreateLiterature(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	l, err := h.literatureService.Create(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, l)
}

// GetLiterature returns one item
// GET /api/v1/literature/:id
func (h *LiteratureHandler) GetLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	l, err := h.literatureService.Get(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// ListLiterature lists published items
// GET /api/v1/literature?type=POEM&language=MALAYALAM&tags=rain,sea&featured=true&limit=20&offset=0
func (h *LiteratureHandler) ListLiterature(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}
	req.Normalize()

	items, err := h.literatureService.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(items)})
}

// SearchLiterature searches published items
// GET /api/v1/literature/search?q=mazha&limit=20
func (h *LiteratureHandler) SearchLiterature(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	items, err := h.literatureService.Search(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Limit: req.Limit, Count: len(items)})
}

// UpdateLiterature edits content fields
// PUT /api/v1/literature/:id
func (h *LiteratureHandler) UpdateLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	l, err := h.literatureService.Update(c.Request.Context(), auth.FromContext(c.Request.Context()), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// PublishLiterature publishes the caller's item
// POST /api/v1/literature/:id/publish
func (h *LiteratureHandler) PublishLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	l, err := h.literatureService.Publish(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// DeleteLiterature removes the caller's item
// DELETE /api/v1/literature/:id
func (h *LiteratureHandler) DeleteLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	if err := h.literatureService.Delete(c.Request.Context(), auth.FromContext(c.Request.Context()), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Literature deleted"})
}

// ModerateLiterature applies an admin action
// POST /api/v1/admin/literature/:id/moderate
func (h *LiteratureHandler) ModerateLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	var req model.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.literatureService.Moderate(c.Request.Context(), auth.FromContext(c.Request.Context()), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// LikeLiterature
// POST /api/v1/literature/:id/like
func (h *LiteratureHandler) LikeLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	l, err := h.literatureService.Like(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}

// UnlikeLiterature
// DELETE /api/v1/literature/:id/like
func (h *LiteratureHandler) UnlikeLiterature(c *gin.Context) {
	id, ok := literatureID(c)
	if !ok {
		return
	}

	l, err := h.literatureService.Unlike(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, l)
}
