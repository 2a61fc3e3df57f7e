package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/store"
	"github.com/MKhiriev/where-is-it/internal/validators"
	"github.com/MKhiriev/where-is-it/models"
)

const (
	// latestPostsLimit is the fixed number of posts returned by ListLatest.
	latestPostsLimit = 6

	// defaultPageSize is applied when the caller supplies no page size.
	defaultPageSize = 10

	// maxPageSize caps a single page so one request cannot pull the whole
	// collection.
	maxPageSize = 100
)

// postService is the concrete implementation of PostService.
// It validates input at the boundary and delegates persistence to a
// [store.PostRepository].
type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given repository.
func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

// Count returns the estimated number of posts in the registry.
func (s *postService) Count(ctx context.Context) (int64, error) {
	return s.postRepository.Count(ctx)
}

// ListPage returns one page of posts. Negative page indexes are treated as
// zero; non-positive sizes fall back to the default, oversized ones are
// capped.
func (s *postService) ListPage(ctx context.Context, page, size int64) ([]models.Post, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return s.postRepository.ListPage(ctx, page, size)
}

// ListLatest returns the six most recent posts sorted by date descending.
func (s *postService) ListLatest(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListLatest(ctx, latestPostsLimit)
}

// Search returns posts whose title or location contains text as a
// case-insensitive substring. An empty search text matches everything.
func (s *postService) Search(ctx context.Context, text string) ([]models.Post, error) {
	return s.postRepository.Search(ctx, text)
}

// GetPost retrieves a single post by identifier.
// An absent or malformed identifier yields store.ErrPostNotFound; the
// post_id column is typed uuid, so a non-UUID value must be answered here
// instead of reaching the database as a cast error.
func (s *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if postID == "" {
		return models.Post{}, ErrInvalidDataProvided
	}
	if err := uuid.Validate(postID); err != nil {
		return models.Post{}, store.ErrPostNotFound
	}

	return s.postRepository.GetPostByID(ctx, postID)
}

// ListByOwner returns every post owned by email. The ownership check against
// the authenticated identity happens at the guard boundary, not here.
func (s *postService) ListByOwner(ctx context.Context, email string) ([]models.Post, error) {
	if email == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.postRepository.ListByOwner(ctx, email)
}

// CreatePost validates and persists a new post, returning it with
// server-assigned fields.
func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, post); err != nil {
		log.Err(err).Str("title", post.Title).Msg("invalid post data provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// UpdatePost validates the replacement field set and applies it, returning
// the matched count. Zero matched means the identifier was absent or not a
// valid UUID.
func (s *postService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	if postID == "" {
		return 0, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("post_id", postID).Msg("invalid post update provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := uuid.Validate(postID); err != nil {
		// a malformed identifier matches nothing, same as an absent one
		return 0, nil
	}

	return s.postRepository.UpdatePost(ctx, postID, update)
}

// DeletePost removes the post, returning the deleted count. Zero deleted
// means the identifier was absent or not a valid UUID; that is not an error.
func (s *postService) DeletePost(ctx context.Context, postID string) (int64, error) {
	if postID == "" {
		return 0, ErrInvalidDataProvided
	}
	if err := uuid.Validate(postID); err != nil {
		return 0, nil
	}

	return s.postRepository.DeletePost(ctx, postID)
}
