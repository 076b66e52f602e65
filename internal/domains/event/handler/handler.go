package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/event/model"
	"jaalakam-backend/internal/domains/event/service"
	"jaalakam-backend/internal/shared/response"
)

type EventHandler struct {
	eventService service.ServiceInterface
}

func NewEventHandler(eventService service.ServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func eventID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID")
		return uuid.Nil, false
	}
	return id, true
}

// ListEvents lists public events
// GET /api/v1/events?upcoming=true
func (h *EventHandler) ListEvents(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Normalize()

	events, err := h.eventService.List(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, events, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(events)})
}

// GetEvent returns an event with its attendees
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	detail, err := h.eventService.Get(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// CreateEvent
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// UpdateEvent
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := eventID(c)
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

	event, err := h.eventService.Update(c.Request.Context(), auth.FromContext(c.Request.Context()), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// DeleteEvent
// DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), auth.FromContext(c.Request.Context()), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

// AttendEvent
// POST /api/v1/events/:id/attend
func (h *EventHandler) AttendEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	detail, err := h.eventService.Attend(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// UnattendEvent
// DELETE /api/v1/events/:id/attend
func (h *EventHandler) UnattendEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	detail, err := h.eventService.Unattend(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}
