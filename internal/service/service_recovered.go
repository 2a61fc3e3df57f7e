package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/store"
	"github.com/MKhiriev/where-is-it/internal/validators"
	"github.com/MKhiriev/where-is-it/models"
)

// recoveredService is the concrete implementation of RecoveredService.
type recoveredService struct {
	recoveredRepository store.RecoveredRepository
	validator           validators.Validator
	logger              *logger.Logger
}

// NewRecoveredService constructs a RecoveredService wired to the given
// repository.
func NewRecoveredService(recoveredRepository store.RecoveredRepository, validator validators.Validator, logger *logger.Logger) RecoveredService {
	return &recoveredService{
		recoveredRepository: recoveredRepository,
		validator:           validator,
		logger:              logger,
	}
}

// ListRecoveredByOwner returns every recovery record owned by email.
func (s *recoveredService) ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error) {
	if email == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.recoveredRepository.ListRecoveredByOwner(ctx, email)
}

// CreateRecoveredItem validates and persists a new recovery record.
//
// The referenced post is not checked for existence: the two tables are
// linked logically only and no cross-table transaction exists.
func (s *recoveredService) CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, item); err != nil {
		log.Err(err).Str("post_id", item.PostID).Msg("invalid recovered item provided")
		return models.RecoveredItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.recoveredRepository.CreateRecoveredItem(ctx, item)
	if err != nil {
		log.Err(err).Msg("recovered item creation ended with error")
		return models.RecoveredItem{}, fmt.Errorf("recovered item creation ended with error: %w", err)
	}

	return created, nil
}
