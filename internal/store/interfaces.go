package store

import (
	"context"

	"github.com/MKhiriev/where-is-it/models"
)

// PostRepository is the persistence contract for lost-and-found posts.
//
// Count is an estimate (planner statistics), not a transactional count.
// GetPostByID returns [ErrPostNotFound] for an absent identifier, while
// UpdatePost and DeletePost report absence through a zero count instead of
// an error.
type PostRepository interface {
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, page, size int64) ([]models.Post, error)
	ListLatest(ctx context.Context, limit uint64) ([]models.Post, error)
	Search(ctx context.Context, text string) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID string) (models.Post, error)
	ListByOwner(ctx context.Context, email string) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (int64, error)
	DeletePost(ctx context.Context, postID string) (int64, error)
}

// RecoveredRepository is the persistence contract for recovery records.
type RecoveredRepository interface {
	ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error)
	CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error)
}
