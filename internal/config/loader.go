package config

import (
	"fmt"
	"strings"

	"ecotech/internal/domain/entities"

	"github.com/kelseyhightower/envconfig"
)

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case StorageMemory, StorageDynamoDB:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	if _, err := entities.ParseCostPolicy(cfg.Treatment.CostPolicy); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	return cfg, nil
}
