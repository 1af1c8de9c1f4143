package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/purplefit/purplefit-v2/backend/internal/middleware"
	"github.com/purplefit/purplefit-v2/backend/internal/mocks"
	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

type testEnv struct {
	router   *gin.Engine
	token    string
	planner  *service.PlannerService
	foods    *store.Collection[models.FoodEntry]
	plans    *store.Collection[models.MealPlan]
	renderer *mocks.MockRenderer
}

// setupRoutes mirrors the production route table without pulling in the
// server package, which would be an import cycle from here.
func setupRoutes(auth *AuthHandler, food *FoodHandler, plan *MealPlanHandler, validator middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", auth.Login)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.GET("/food-entries", food.ListFoods)
		protected.GET("/food-entries/:id", food.GetFood)
		protected.POST("/food-entries", food.CreateFood)
		protected.PUT("/food-entries/:id", food.UpdateFood)
		protected.DELETE("/food-entries/:id", food.DeleteFood)

		protected.GET("/meal-plans", plan.ListPlans)
		protected.GET("/meal-plans/:id", plan.GetPlan)
		protected.POST("/meal-plans", plan.CreatePlan)
		protected.PUT("/meal-plans/:id", plan.UpdatePlan)
		protected.DELETE("/meal-plans/:id", plan.DeletePlan)
		protected.POST("/meal-plans/:id/weeks", plan.AddWeek)
		protected.PUT("/meal-plans/:id/weeks/:weekID/meals", plan.SetMeals)
		protected.GET("/meal-plans/:id/export", plan.ExportPlan)
	}
	return r
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kv := mocks.NewMemKV()
	foods := store.NewCollection[models.FoodEntry](kv, store.FoodEntriesKey)
	plans := store.NewCollection[models.MealPlan](kv, store.MealPlansKey)
	plans.Normalize = models.NormalizePlans

	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	now := func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	foods.NewID, foods.Now = newID, now
	plans.NewID, plans.Now = newID, now

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	authService := service.NewAuthService("coach@purplefit.test", string(hash), "test-secret")

	renderer := &mocks.MockRenderer{}
	planner := service.NewPlannerService(plans, foods, renderer)

	router := setupRoutes(
		NewAuthHandler(authService),
		NewFoodHandler(service.NewFoodService(foods)),
		NewMealPlanHandler(planner),
		authService,
	)

	token, err := authService.Login("coach@purplefit.test", "secret")
	require.NoError(t, err)

	return &testEnv{
		router:   router,
		token:    token,
		planner:  planner,
		foods:    foods,
		plans:    plans,
		renderer: renderer,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewBufferString(`{"email":"coach@purplefit.test","password":"secret"}`)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewBufferString(`{"email":"coach@purplefit.test","password":"nope"}`)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/v1/food-entries", nil)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest("GET", "/api/v1/food-entries", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestFoodEntriesCRUD(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/food-entries", CreateFoodRequest{
		Name:     "Oatmeal",
		MealType: models.MealTypeBreakfast,
		Calories: 300,
		Category: "Normal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.FoodEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rr = env.do(t, "GET", "/api/v1/food-entries", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.FoodEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rr = env.do(t, "PUT", "/api/v1/food-entries/"+created.ID, map[string]any{"name": "Overnight Oats"})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.FoodEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Overnight Oats", updated.Name)
	assert.Equal(t, 300, updated.Calories)

	rr = env.do(t, "DELETE", "/api/v1/food-entries/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, "GET", "/api/v1/food-entries/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateFoodRejectsInvalidMealType(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/food-entries", map[string]any{
		"name": "Brunch Thing", "meal_type": "brunch",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMealPlanLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/meal-plans", CreatePlanRequest{
		Title: "Client Plan", ClientName: "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, models.PlanCategoryNormal, plan.Category)

	rr = env.do(t, "POST", "/api/v1/meal-plans/"+plan.ID+"/weeks", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	var week models.MealPlanWeek
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &week))
	assert.Equal(t, 1, week.WeekNumber)

	rr = env.do(t, "PUT", "/api/v1/meal-plans/"+plan.ID+"/weeks/"+week.ID+"/meals", SetMealsRequest{
		DayOfWeek:       2,
		MealType:        models.MealTypeLunch,
		CustomMealTexts: []string{"Pepper soup"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var afterSet models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &afterSet))
	require.Len(t, afterSet.Weeks[0].Meals, 1)
	assert.Equal(t, []string{"Pepper soup"}, afterSet.Weeks[0].Meals[0].CustomMealTexts)

	rr = env.do(t, "DELETE", "/api/v1/meal-plans/"+plan.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, "GET", "/api/v1/meal-plans/"+plan.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetMealsUnknownWeek(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/meal-plans", CreatePlanRequest{Title: "Plan"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))

	rr = env.do(t, "PUT", "/api/v1/meal-plans/"+plan.ID+"/weeks/ghost/meals", SetMealsRequest{
		DayOfWeek:       1,
		MealType:        models.MealTypeLunch,
		CustomMealTexts: []string{"x"},
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExportEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/meal-plans", CreatePlanRequest{Title: "Client Plan"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))

	rr = env.do(t, "GET", "/api/v1/meal-plans/"+plan.ID+"/export", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "mock.pdf")
	assert.Equal(t, "%PDF-mock", rr.Body.String())
	assert.Equal(t, 1, env.renderer.Calls)
}

func TestExportMissingPlan(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, "GET", "/api/v1/meal-plans/ghost/export", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdatePlanFullReplace(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/v1/meal-plans", CreatePlanRequest{Title: "Old Title"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))

	rr = env.do(t, "PUT", "/api/v1/meal-plans/"+plan.ID, UpdatePlanRequest{
		Title:      "New Title",
		ClientName: "Jane Doe",
		Category:   models.PlanCategoryLiverReset,
		Weeks:      []models.MealPlanWeek{{ID: "w1", WeekNumber: 1, Meals: []models.MealPlanMeal{}}},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.MealPlan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, models.PlanCategoryLiverReset, updated.Category)
	require.Len(t, updated.Weeks, 1)
}
