package maps_fx

import (
	"net/http"

	"go.uber.org/fx"
	"urbanflow/internal/config"
	"urbanflow/internal/services"
)

var Module = fx.Provide(provideHTTPClient, provideMapsClient, providePlaceService)

// A zero MAPS_HTTP_TIMEOUT leaves outbound calls unbounded.
func provideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.MapsHTTPTimeout}
}

func provideMapsClient(cfg config.Config, httpClient *http.Client) services.MapsClientInterface {
	return services.NewGoogleMapsClient(cfg, httpClient)
}

func providePlaceService(maps services.MapsClientInterface) services.PlaceServiceInterface {
	return services.NewPlaceService(maps)
}
