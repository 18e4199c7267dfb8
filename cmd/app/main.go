package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"urbanflow/cmd/fx/config_fx"
	"urbanflow/cmd/fx/controllers_fx"
	"urbanflow/cmd/fx/db_fx"
	"urbanflow/cmd/fx/itinerary_fx"
	"urbanflow/cmd/fx/maps_fx"
	"urbanflow/cmd/fx/visit_fx"
	"urbanflow/internal/api/controllers"
	"urbanflow/internal/api/views"
	"urbanflow/internal/config"
	"urbanflow/pkg/middleware"
)

func main() {
	app := fx.New(appOptions())
	app.Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		maps_fx.Module,
		visit_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg config.Config, itineraryController *controllers.ItineraryController) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.SetHTMLTemplate(views.Templates())

	RegisterRoutes(r, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine, itineraryController *controllers.ItineraryController) {
	r.GET("/", itineraryController.ShowItinerary)
	r.POST("/", itineraryController.CreateItinerary)
	r.GET("/healthz", itineraryController.Health)
}
