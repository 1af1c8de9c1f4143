package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
)

// FoodHandler serves the food entry catalog endpoints.
type FoodHandler struct {
	foods service.IFoodService
}

func NewFoodHandler(foods service.IFoodService) *FoodHandler {
	return &FoodHandler{foods: foods}
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.foods.ListFoods(c.Request.Context()))
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	entry := h.foods.GetFood(c.Request.Context(), c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.MealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal type"})
		return
	}

	created, err := h.foods.CreateFood(c.Request.Context(), models.FoodEntry{
		Name:        req.Name,
		Description: req.Description,
		MealType:    req.MealType,
		Calories:    req.Calories,
		Category:    req.Category,
	})
	if err != nil {
		log.Printf("[API] creating food entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food entry"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FoodHandler) UpdateFood(c *gin.Context) {
	var patch models.FoodEntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if patch.MealType != nil && !patch.MealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal type"})
		return
	}

	updated, err := h.foods.UpdateFood(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Printf("[API] updating food entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food entry"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food entry not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	removed, err := h.foods.DeleteFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[API] deleting food entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food entry"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "food entry not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
