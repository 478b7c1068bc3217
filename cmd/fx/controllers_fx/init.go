package controllers_fx

import (
	"ezyvoyage/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewAdvisoryController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewBookmarkController),
)
