// internal/handlers/favorites.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/services"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// GET /favorites
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"favorites": favorites,
	})
}

// POST /favorites/toggle
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.BadRequestResponse(c, "Invalid product payload", err.Error())
		return
	}

	favorited, err := h.favoriteService.Toggle(product)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": product.ID,
		"favorited":  favorited,
	})
}

// DELETE /favorites/:productId
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	if err := h.favoriteService.Remove(c.Param("productId")); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Favorite removed",
	})
}
