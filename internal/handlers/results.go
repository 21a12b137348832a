// internal/handlers/results.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
	"github.com/equipscout/equipscout-backend/internal/services"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

type ResultsHandler struct {
	sessionService *services.SessionService
	exportService  *services.ExportService
}

func NewResultsHandler(sessionService *services.SessionService, exportService *services.ExportService) *ResultsHandler {
	return &ResultsHandler{
		sessionService: sessionService,
		exportService:  exportService,
	}
}

func (h *ResultsHandler) controller(c *gin.Context) (*refine.Controller, bool) {
	ctrl, ok := h.sessionService.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Session not found or expired")
		return nil, false
	}
	return ctrl, true
}

func resultsPayload(ctrl *refine.Controller) gin.H {
	visible := ctrl.Visible()
	return gin.H{
		"visible":    visible,
		"total":      len(ctrl.Products()),
		"matched":    len(visible),
		"vocabulary": ctrl.Vocabulary(),
		"filters":    ctrl.Filters(),
		"sort_key":   ctrl.SortKey(),
		"citations":  ctrl.Citations(),
	}
}

// GET /sessions/:id/results
func (h *ResultsHandler) GetResults(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, resultsPayload(ctrl))
}

// PUT /sessions/:id/filters
func (h *ResultsHandler) UpdateFilters(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var update refine.FilterUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid filter update", err.Error())
		return
	}

	ctrl.UpdateFilters(update)
	utils.SuccessResponse(c, resultsPayload(ctrl))
}

// POST /sessions/:id/filters/reset
func (h *ResultsHandler) ResetFilters(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	ctrl.ResetFilters()
	utils.SuccessResponse(c, resultsPayload(ctrl))
}

type sortRequest struct {
	SortKey models.SortKey `json:"sort_key" validate:"required,oneof=priceLow priceHigh brand"`
}

// PUT /sessions/:id/sort
func (h *ResultsHandler) UpdateSort(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid sort request", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ctrl.SetSortKey(req.SortKey)
	utils.SuccessResponse(c, resultsPayload(ctrl))
}

// GET /sessions/:id/export?format=csv|xls|pdf
func (h *ResultsHandler) Export(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	format := services.ExportFormat(c.DefaultQuery("format", "csv"))
	artifact, err := h.exportService.Render(ctrl.Visible(), format)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	// Exporting an empty collection produces no artifact, by contract.
	if artifact.Content == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}
