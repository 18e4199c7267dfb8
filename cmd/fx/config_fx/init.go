package config_fx

import (
	"go.uber.org/fx"
	"urbanflow/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
