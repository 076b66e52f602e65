package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jaalakam-backend/internal/domains/auth"
	"jaalakam-backend/internal/domains/report/model"
	"jaalakam-backend/internal/domains/report/service"
	"jaalakam-backend/internal/shared/response"
)

type ReportHandler struct {
	reportService service.ServiceInterface
}

func NewReportHandler(reportService service.ServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport files a report
// POST /api/v1/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.Validation(c, err)
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, report)
}

// ListReports lists the moderation queue
// GET /api/v1/admin/reports?status=PENDING&limit=50
func (h *ReportHandler) ListReports(c *gin.Context) {
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

	reports, err := h.reportService.List(c.Request.Context(), auth.FromContext(c.Request.Context()), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, reports, &response.Meta{Limit: req.Limit, Offset: req.Offset, Count: len(reports)})
}

// GetReport
// GET /api/v1/admin/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), auth.FromContext(c.Request.Context()), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}
