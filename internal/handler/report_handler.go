package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitelog/sitelog-api/internal/service"
	"github.com/sitelog/sitelog-api/pkg/response"
)

// ReportHandler serves rendered project reports.
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Generate godoc
// @Summary Download a project activity report
// @Tags Reports
// @Produce octet-stream
// @Param id path string true "Project ID"
// @Param format query string false "Report format (csv or pdf)" default(pdf)
// @Success 200 {file} binary
// @Router /projects/{id}/report [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	format := service.ReportFormat(c.DefaultQuery("format", string(service.ReportFormatPDF)))

	report, err := h.service.Generate(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, report.ContentType, report.Payload)
}
