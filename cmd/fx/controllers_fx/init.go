package controllers_fx

import (
	"go.uber.org/fx"
	"urbanflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController))
