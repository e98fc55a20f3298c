package app

import (
	"fmt"

	"github.com/shrimpsizemoose/lussekatt/internal/store"
)

type Service struct {
	Config *Config
	Store  store.RegistryStore
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	return &Service{
		Config: config,
		Store:  store,
	}, nil
}

func (s *Service) Close() error {
	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("error while closing store: %w", err)
	}
	return nil
}
