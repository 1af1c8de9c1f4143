package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/purplefit/purplefit-v2/backend/internal/api"
	"github.com/purplefit/purplefit-v2/backend/internal/middleware"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	foodHandler *api.FoodHandler,
	planHandler *api.MealPlanHandler,
	authService service.IAuthService,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		foods := protected.Group("/food-entries")
		{
			foods.GET("", foodHandler.ListFoods)
			foods.GET("/:id", foodHandler.GetFood)
			foods.POST("", foodHandler.CreateFood)
			foods.PUT("/:id", foodHandler.UpdateFood)
			foods.DELETE("/:id", foodHandler.DeleteFood)
		}

		plans := protected.Group("/meal-plans")
		{
			plans.GET("", planHandler.ListPlans)
			plans.GET("/:id", planHandler.GetPlan)
			plans.POST("", planHandler.CreatePlan)
			plans.PUT("/:id", planHandler.UpdatePlan)
			plans.DELETE("/:id", planHandler.DeletePlan)
			plans.POST("/:id/weeks", planHandler.AddWeek)
			plans.PUT("/:id/weeks/:weekID/meals", planHandler.SetMeals)
			plans.GET("/:id/export", planHandler.ExportPlan)
		}
	}

	return router
}
