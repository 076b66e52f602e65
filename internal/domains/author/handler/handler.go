package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/author/model"
	"jaalakam-backend/internal/domains/author/service"
	"jaalakam-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService service.ServiceInterface
}

func NewAuthorHandler(authorService service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

func bindProfile(c *gin.Context) (model.ProfileRequest, bool) {
	var req model.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return req, false
	}
	return req, true
}

// CreateProfile creates the caller's author profile
// POST /api/v1/authors
func (h *AuthorHandler) CreateProfile(c *gin.Context) {
	req, ok := bindProfile(c)
	if !ok {
		return
	}

	author, err := h.authorService.CreateProfile(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, author)
}

// UpdateProfile edits the caller's author profile
// PUT /api/v1/authors/me
func (h *AuthorHandler) UpdateProfile(c *gin.Context) {
	req, ok := bindProfile(c)
	if !ok {
		return
	}

	author, err := h.authorService.UpdateProfile(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, author)
}

// GetAuthor returns an author with published works
// GET /api/v1/authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	detail, err := h.authorService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ListAuthors lists authors
// GET /api/v1/authors?verified=true&limit=20
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	authors, err := h.authorService.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(authors)})
}

// VerifyAuthor marks an author verified
// POST /api/v1/admin/authors/:id/verify
func (h *AuthorHandler) VerifyAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	author, err := h.authorService.Verify(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, author)
}
