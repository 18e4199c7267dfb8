package visit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"urbanflow/internal/config"
	"urbanflow/internal/repositories"
	"urbanflow/internal/services"
)

var Module = fx.Provide(provideVisitRepo, provideVisitService)

func provideVisitRepo(db *gorm.DB) repositories.VisitRepository {
	return repositories.NewVisitRepository(db)
}

func provideVisitService(visitRepo repositories.VisitRepository, cfg config.Config) services.VisitServiceInterface {
	return services.NewVisitService(visitRepo, cfg.Location())
}
