// internal/handlers/saved_search.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/services"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

type SavedSearchHandler struct {
	savedSearchService *services.SavedSearchService
}

func NewSavedSearchHandler(savedSearchService *services.SavedSearchService) *SavedSearchHandler {
	return &SavedSearchHandler{savedSearchService: savedSearchService}
}

type saveSearchRequest struct {
	Name  string             `json:"name" validate:"required,min=1,max=255"`
	Query models.SearchQuery `json:"query"`
}

// GET /saved-searches
func (h *SavedSearchHandler) GetSavedSearches(c *gin.Context) {
	searches, err := h.savedSearchService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"saved_searches": searches,
	})
}

// POST /saved-searches
func (h *SavedSearchHandler) CreateSavedSearch(c *gin.Context) {
	var req saveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid saved search payload", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	saved, err := h.savedSearchService.Create(req.Name, req.Query)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"saved_search": saved,
	})
}

// DELETE /saved-searches/:id
func (h *SavedSearchHandler) DeleteSavedSearch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid saved search ID", nil)
		return
	}

	if err := h.savedSearchService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Saved search deleted",
	})
}
