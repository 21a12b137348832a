// internal/handlers/chat.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/services"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Message string               `json:"message" validate:"required"`
	History []models.ChatMessage `json:"history,omitempty"`
}

// POST /chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid chat payload", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	reply := h.chatService.Converse(c.Request.Context(), req.Message, req.History)

	utils.SuccessResponse(c, gin.H{
		"reply": reply,
	})
}

type compareSummaryRequest struct {
	Products []models.Product `json:"products" validate:"required,min=1"`
}

// POST /compare/summary
func (h *ChatHandler) CompareSummary(c *gin.Context) {
	var req compareSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid comparison payload", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	summary := h.chatService.SummarizeDifferences(c.Request.Context(), req.Products)

	utils.SuccessResponse(c, gin.H{
		"summary": summary,
	})
}
