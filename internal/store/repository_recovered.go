package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/models"
	"github.com/jackc/pgerrcode"
)

// recoveredRepository is the PostgreSQL-backed implementation of
// [RecoveredRepository]. It handles recovery records in the "recovered"
// table.
//
// The table logically references posts by post_id, but no foreign key is
// declared: consistency between the two tables is the caller's
// responsibility and no cross-table transaction exists.
type recoveredRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewRecoveredRepository constructs a [RecoveredRepository] backed by the
// provided database connection and logger.
func NewRecoveredRepository(db *DB, logger *logger.Logger) RecoveredRepository {
	logger.Debug().Msg("creating recovered repository")
	return &recoveredRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// ListRecoveredByOwner returns every recovery record whose user_email equals
// email, newest first. Ownership authorization is enforced upstream by the
// access guard, not here.
func (r *recoveredRepository) ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecoveredByOwnerQuery(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recoveredRepository.ListRecoveredByOwner").Str("user_email", email).Msg("failed to execute recovered query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.RecoveredItem, 0, 16)

	for rows.Next() {
		var item models.RecoveredItem

		scanErr := rows.Scan(
			&item.RecoveredID,
			&item.UserEmail,
			&item.PostID,
			&item.RecoveredLocation,
			&item.RecoveredDate,
			&item.RecipientName,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "recoveredRepository.ListRecoveredByOwner").Str("user_email", email).Msg("failed to scan recovered row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "recoveredRepository.ListRecoveredByOwner").Str("user_email", email).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// CreateRecoveredItem persists a new recovery record and returns it with
// server-assigned fields (RecoveredID, CreatedAt).
func (r *recoveredRepository) CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
	log := logger.FromContext(ctx)

	item.RecoveredID = r.ids.Generate()

	row := r.DB.QueryRowContext(ctx, createRecoveredItem,
		item.RecoveredID,
		item.UserEmail,
		item.PostID,
		item.RecoveredLocation,
		item.RecoveredDate,
		item.RecipientName,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "recoveredRepository.CreateRecoveredItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.RecoveredItem{}, ErrDuplicateIdentifier
		default:
			return models.RecoveredItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.RecoveredItem
	if err := row.Scan(
		&saved.RecoveredID,
		&saved.UserEmail,
		&saved.PostID,
		&saved.RecoveredLocation,
		&saved.RecoveredDate,
		&saved.RecipientName,
		&saved.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "recoveredRepository.CreateRecoveredItem").Msg("error: scanning error")
		return models.RecoveredItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}
