package mail_fx

import (
	"ezyvoyage/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(services.NewMailService)
