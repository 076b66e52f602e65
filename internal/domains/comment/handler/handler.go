package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/comment/model"
	"jaalakam-backend/internal/domains/comment/service"
	"jaalakam-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func commentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateComment comments on literature or replies to a comment
// POST /api/v1/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment)
}

// ListComments lists comments on a literature item, newest first
// GET /api/v1/literature/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	literatureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid literature ID")
		return
	}

	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	comments, err := h.commentService.ListForLiterature(c.Request.Context(), auth.FromContext(c.Request.Context()), literatureID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(comments)})
}

// UpdateComment
// PUT /api/v1/comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := commentID(c)
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

	comment, err := h.commentService.Update(c.Request.Context(), auth.FromContext(c.Request.Context()), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comment)
}

// DeleteComment
// DELETE /api/v1/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), auth.FromContext(c.Request.Context()), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted"})
}
