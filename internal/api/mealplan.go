package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
)

// MealPlanHandler serves the meal plan and export endpoints.
type MealPlanHandler struct {
	planner service.IPlannerService
}

func NewMealPlanHandler(planner service.IPlannerService) *MealPlanHandler {
	return &MealPlanHandler{planner: planner}
}

func (h *MealPlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.planner.ListPlans(c.Request.Context()))
}

func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	draft, err := h.planner.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.planError(c, "loading meal plan", err)
		return
	}
	c.JSON(http.StatusOK, draft.Plan)
}

func (h *MealPlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.planner.CreatePlan(c.Request.Context(), models.MealPlan{
		Title:      req.Title,
		ClientName: req.ClientName,
		Category:   req.Category,
	})
	if err != nil {
		log.Printf("[API] creating meal plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal plan"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePlan replaces the whole plan body, weeks included.
func (h *MealPlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft, err := h.planner.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.planError(c, "loading meal plan", err)
		return
	}

	draft.Plan.Title = req.Title
	draft.Plan.ClientName = req.ClientName
	if req.Category.Valid() {
		draft.Plan.Category = req.Category
	}
	if req.Weeks != nil {
		draft.Plan.Weeks = req.Weeks
	}

	if err := h.planner.Save(c.Request.Context(), draft); err != nil {
		h.planError(c, "saving meal plan", err)
		return
	}
	c.JSON(http.StatusOK, draft.Plan)
}

func (h *MealPlanHandler) DeletePlan(c *gin.Context) {
	removed, err := h.planner.DeletePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[API] deleting meal plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal plan"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddWeek appends an empty week to the plan and persists it.
func (h *MealPlanHandler) AddWeek(c *gin.Context) {
	draft, err := h.planner.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.planError(c, "loading meal plan", err)
		return
	}

	week := draft.AddWeek()
	if err := h.planner.Save(c.Request.Context(), draft); err != nil {
		h.planError(c, "saving meal plan", err)
		return
	}
	c.JSON(http.StatusCreated, week)
}

// SetMeals writes one grid slot of a week and persists the plan.
func (h *MealPlanHandler) SetMeals(c *gin.Context) {
	var req SetMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.MealType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal type"})
		return
	}

	draft, err := h.planner.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.planError(c, "loading meal plan", err)
		return
	}

	if err := draft.SetMealSelection(c.Param("weekID"), req.DayOfWeek, req.MealType, req.FoodEntryIDs, req.CustomMealTexts); err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "week not found"})
			return
		}
		log.Printf("[API] setting meals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set meals"})
		return
	}

	if err := h.planner.Save(c.Request.Context(), draft); err != nil {
		h.planError(c, "saving meal plan", err)
		return
	}
	c.JSON(http.StatusOK, draft.Plan)
}

// ExportPlan saves the plan and streams the rendered PDF document.
func (h *MealPlanHandler) ExportPlan(c *gin.Context) {
	draft, err := h.planner.LoadDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.planError(c, "loading meal plan", err)
		return
	}

	result, err := h.planner.Export(c.Request.Context(), draft)
	if err != nil {
		h.planError(c, "exporting meal plan", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (h *MealPlanHandler) planError(c *gin.Context, action string, err error) {
	if errors.Is(err, service.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	log.Printf("[API] %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
