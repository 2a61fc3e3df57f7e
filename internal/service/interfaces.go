package service

import (
	"context"

	"github.com/MKhiriev/where-is-it/models"
)

// SessionService converts externally authenticated identities into the
// server's own signed session tokens and validates them on later requests.
type SessionService interface {
	// IssueSession validates the submitted claims and returns a signed
	// session token with the configured expiry.
	IssueSession(ctx context.Context, claims models.SessionClaims) (models.Token, error)

	// ParseSession verifies signature, issuer and expiry of tokenString and
	// returns the decoded token. Expired tokens yield ErrTokenIsExpired.
	ParseSession(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService implements the registry's post operations on top of
// [store.PostRepository], adding boundary validation and paging rules.
type PostService interface {
	Count(ctx context.Context) (int64, error)
	ListPage(ctx context.Context, page, size int64) ([]models.Post, error)
	ListLatest(ctx context.Context) ([]models.Post, error)
	Search(ctx context.Context, text string) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	ListByOwner(ctx context.Context, email string) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (int64, error)
	DeletePost(ctx context.Context, postID string) (int64, error)
}

// RecoveredService implements the recovery-record operations.
type RecoveredService interface {
	ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error)
	CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error)
}
