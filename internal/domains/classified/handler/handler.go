package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/classified/model"
	"jaalakam-backend/internal/domains/classified/service"
	"jaalakam-backend/internal/shared/response"
)

type ClassifiedHandler struct {
	classifiedService service.ServiceInterface
}

func NewClassifiedHandler(classifiedService service.ServiceInterface) *ClassifiedHandler {
	return &ClassifiedHandler{classifiedService: classifiedService}
}

func classifiedID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid classified ID")
		return uuid.Nil, false
	}
	return id, true
}

// ListClassifieds lists active classifieds
// GET /api/v1/classifieds?category=housing&location=kochi
func (h *ClassifiedHandler) ListClassifieds(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	items, err := h.classifiedService.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(items)})
}

// GetClassified
// GET /api/v1/classifieds/:id
func (h *ClassifiedHandler) GetClassified(c *gin.Context) {
	id, ok := classifiedID(c)
	if !ok {
		return
	}

	item, err := h.classifiedService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreateClassified
// POST /api/v1/classifieds
func (h *ClassifiedHandler) CreateClassified(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	item, err := h.classifiedService.Create(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdateClassified
// PUT /api/v1/classifieds/:id
func (h *ClassifiedHandler) UpdateClassified(c *gin.Context) {
	id, ok := classifiedID(c)
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

	item, err := h.classifiedService.Update(c.Request.Context(), auth.FromContext(c.Request.Context()), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// DeleteClassified
// DELETE /api/v1/classifieds/:id
func (h *ClassifiedHandler) DeleteClassified(c *gin.Context) {
	id, ok := classifiedID(c)
	if !ok {
		return
	}

	if err := h.classifiedService.Delete(c.Request.Context(), auth.FromContext(c.Request.Context()), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Classified deleted"})
}
