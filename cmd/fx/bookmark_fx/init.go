package bookmark_fx

import (
	"ezyvoyage/internal/repositories"
	"ezyvoyage/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewBookmarkRepository,
	services.NewBookmarkService,
)
