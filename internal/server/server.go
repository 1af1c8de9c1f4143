package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/purplefit/purplefit-v2/backend/config"
	"github.com/purplefit/purplefit-v2/backend/internal/api"
	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/renderer"
	"github.com/purplefit/purplefit-v2/backend/internal/router"
	"github.com/purplefit/purplefit-v2/backend/internal/seed"
	"github.com/purplefit/purplefit-v2/backend/internal/service"
	"github.com/purplefit/purplefit-v2/backend/internal/store"
)

// Server wires the store, services and HTTP layer together.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server

	Foods   *store.Collection[models.FoodEntry]
	Plans   *store.Collection[models.MealPlan]
	Planner *service.PlannerService
}

// New builds a fully wired server from configuration: opens the record
// store, migrates and seeds it, then assembles services and routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	kv, err := store.OpenKV(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	foods := store.NewCollection[models.FoodEntry](kv, store.FoodEntriesKey)
	plans := store.NewCollection[models.MealPlan](kv, store.MealPlansKey)
	plans.Normalize = models.NormalizePlans

	if err := seed.NewSeeder(foods, plans).Run(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed default content: %w", err)
	}

	var s3Client renderer.S3Getter
	if cfg.NeedsS3() {
		s3cfg, err := config.NewS3Config(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to configure S3 assets: %w", err)
		}
		s3Client = s3cfg.Client
	}
	assets := renderer.NewBrandAssets(cfg.CoverImageURL, cfg.LogoImageURL, s3Client)

	authService := service.NewAuthService(cfg.OperatorEmail, cfg.OperatorPasswordHash, cfg.JWTSecret)
	foodService := service.NewFoodService(foods)
	plannerService := service.NewPlannerService(plans, foods, renderer.New(assets))

	r := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewFoodHandler(foodService),
		api.NewMealPlanHandler(plannerService),
		authService,
	)

	return &Server{
		cfg:     cfg,
		router:  r,
		Foods:   foods,
		Plans:   plans,
		Planner: plannerService,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Start listens on the configured port until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
