package planner_fx

import (
	"ezyvoyage/internal/config"
	"ezyvoyage/internal/pipeline"
	"ezyvoyage/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	services.NewFoursquareClient,
	services.NewUnsplashClient,
	provideContextFetcher,
	providePhotoService,
	services.NewPlannerService,
	services.NewRecommendationService,
	services.NewAdvisoryService,
)

func provideContextFetcher(places *services.FoursquareClient, log *zap.Logger) *pipeline.ContextFetcher {
	return pipeline.NewContextFetcher(places, places, log)
}

func providePhotoService(photos *services.UnsplashClient, cfg *config.Config, log *zap.Logger) services.PhotoServiceInterface {
	return services.NewPhotoService(photos, cfg, log)
}
