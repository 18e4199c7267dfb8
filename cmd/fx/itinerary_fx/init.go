package itinerary_fx

import (
	"go.uber.org/fx"
	"urbanflow/internal/config"
	"urbanflow/internal/services"
)

var Module = fx.Provide(
	provideLocationExtractor,
	providePopularityService,
	services.NewRouteService,
)

func provideLocationExtractor() services.LocationExtractorInterface {
	return services.NewLocationExtractor()
}

func providePopularityService(cfg config.Config) services.PopularityServiceInterface {
	return services.NewPopularityService(cfg.Location())
}
