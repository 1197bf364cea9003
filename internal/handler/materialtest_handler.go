package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitelog/sitelog-api/internal/service"
	appErrors "github.com/sitelog/sitelog-api/pkg/errors"
	"github.com/sitelog/sitelog-api/pkg/response"
)

// MaterialTestHandler handles material test template endpoints.
type MaterialTestHandler struct {
	service *service.MaterialTestService
}

// NewMaterialTestHandler constructs a material test handler.
func NewMaterialTestHandler(svc *service.MaterialTestService) *MaterialTestHandler {
	return &MaterialTestHandler{service: svc}
}

// List godoc
// @Summary List material tests
// @Tags MaterialTests
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Envelope
// @Router /material-tests [get]
func (h *MaterialTestHandler) List(c *gin.Context) {
	tests, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tests)
}

// Get godoc
// @Summary Get material test by id
// @Tags MaterialTests
// @Produce json
// @Param id path string true "Material test ID"
// @Success 200 {object} response.Envelope
// @Router /material-tests/{id} [get]
func (h *MaterialTestHandler) Get(c *gin.Context) {
	test, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, test)
}

// Create godoc
// @Summary Create material test
// @Tags MaterialTests
// @Accept json
// @Produce json
// @Param payload body service.CreateMaterialTestRequest true "Material test payload"
// @Success 201 {object} response.Envelope
// @Router /material-tests [post]
func (h *MaterialTestHandler) Create(c *gin.Context) {
	var req service.CreateMaterialTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	test, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, test)
}

// Update godoc
// @Summary Update material test
// @Tags MaterialTests
// @Accept json
// @Produce json
// @Param id path string true "Material test ID"
// @Param payload body service.UpdateMaterialTestRequest true "Material test payload"
// @Success 200 {object} response.Envelope
// @Router /material-tests/{id} [put]
func (h *MaterialTestHandler) Update(c *gin.Context) {
	var req service.UpdateMaterialTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	test, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, test)
}

// Delete godoc
// @Summary Delete material test
// @Tags MaterialTests
// @Param id path string true "Material test ID"
// @Success 204
// @Router /material-tests/{id} [delete]
func (h *MaterialTestHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
