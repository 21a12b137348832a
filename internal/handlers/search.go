// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/refine"
	"github.com/equipscout/equipscout-backend/internal/services"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

const noResultsMessage = "No products found matching your criteria. Try broadening your search."

type SearchHandler struct {
	searchService  *services.SearchService
	sessionService *services.SessionService
}

func NewSearchHandler(searchService *services.SearchService, sessionService *services.SessionService) *SearchHandler {
	return &SearchHandler{
		searchService:  searchService,
		sessionService: sessionService,
	}
}

type searchRequest struct {
	Query models.SearchQuery `json:"query"`
	// SessionID supersedes an existing session's result set wholesale;
	// empty starts a new session.
	SessionID string `json:"session_id,omitempty"`
}

// POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid search request", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req.Query)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Query)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	var sessionID string
	var ctrl *refine.Controller
	if req.SessionID != "" {
		sessionID, ctrl = h.sessionService.Replace(req.SessionID, result.Products, result.Citations)
	} else {
		sessionID, ctrl = h.sessionService.Start(result.Products, result.Citations)
	}

	data := gin.H{
		"session_id": sessionID,
		"products":   result.Products,
		"citations":  ctrl.Citations(),
		"vocabulary": ctrl.Vocabulary(),
		"filters":    ctrl.Filters(),
		"sort_key":   ctrl.SortKey(),
		"visible":    ctrl.Visible(),
	}
	if len(result.Products) == 0 {
		data["message"] = noResultsMessage
	}

	utils.SuccessResponse(c, data)
}
