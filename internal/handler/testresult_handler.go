package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitelog/sitelog-api/internal/service"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
	"github.com/sitelog/sitelog-api/pkg/response"
)

// TestResultHandler handles performed test result endpoints.
type TestResultHandler struct {
	service *service.TestResultService
}

// NewTestResultHandler constructs a test result handler.
func NewTestResultHandler(svc *service.TestResultService) *TestResultHandler {
	return &TestResultHandler{service: svc}
}

// List godoc
// @Summary List test results with display names
// @Tags TestResults
// @Produce json
// @Param projectId query string false "Filter by project"
// @Success 200 {object} response.Envelope
// @Router /test-results [get]
func (h *TestResultHandler) List(c *gin.Context) {
	results, err := h.service.List(c.Request.Context(), c.Query("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}

// Get godoc
// @Summary Get test result by id
// @Tags TestResults
// @Produce json
// @Param id path string true "Test result ID"
// @Success 200 {object} response.Envelope
// @Router /test-results/{id} [get]
func (h *TestResultHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Create godoc
// @Summary Record a performed test
// @Tags TestResults
// @Accept json
// @Produce json
// @Param payload body service.CreateTestResultRequest true "Test result payload"
// @Success 201 {object} response.Envelope
// @Router /test-results [post]
func (h *TestResultHandler) Create(c *gin.Context) {
	var req service.CreateTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Delete godoc
// @Summary Delete test result
// @Tags TestResults
// @Param id path string true "Test result ID"
// @Success 204
// @Router /test-results/{id} [delete]
func (h *TestResultHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
