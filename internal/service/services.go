package service

import (
	"github.com/MKhiriev/where-is-it/internal/config"
	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/store"
	"github.com/MKhiriev/where-is-it/internal/validators"
)

type Services struct {
	SessionService   SessionService
	PostService      PostService
	RecoveredService RecoveredService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewRegistryValidator()

	return &Services{
		SessionService:   NewSessionService(cfg, validator, logger),
		PostService:      NewPostService(storages.PostRepository, validator, logger),
		RecoveredService: NewRecoveredService(storages.RecoveredRepository, validator, logger),
	}
}
