package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It executes all post CRUD and query operations directly against the
// "posts" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (post_id, user_email, etc.).
type postRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// Count returns the estimated number of posts in the registry.
//
// The estimate comes from the planner statistics (pg_class.reltuples) and is
// eventually consistent. A freshly created, never-analyzed table reports -1;
// in that case the method falls back to an exact COUNT(*).
func (p *postRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := p.DB.QueryRowContext(ctx, countPostsEstimate).Scan(&count); err != nil {
		log.Err(err).Str("func", "postRepository.Count").Msg("failed to read posts count estimate")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if count >= 0 {
		return count, nil
	}

	if err := p.DB.QueryRowContext(ctx, countPostsExact).Scan(&count); err != nil {
		log.Err(err).Str("func", "postRepository.Count").Msg("failed to count posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListPage returns one page of posts: skip page*size records, take size.
func (p *postRepository) ListPage(ctx context.Context, page, size int64) ([]models.Post, error) {
	query, args, err := buildListPageQuery(page, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPosts(ctx, "postRepository.ListPage", query, args...)
}

// ListLatest returns the limit most recent posts sorted by date descending.
func (p *postRepository) ListLatest(ctx context.Context, limit uint64) ([]models.Post, error) {
	query, args, err := buildListLatestQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPosts(ctx, "postRepository.ListLatest", query, args...)
}

// Search returns posts whose title or location contains text as a
// case-insensitive substring.
func (p *postRepository) Search(ctx context.Context, text string) ([]models.Post, error) {
	query, args, err := buildSearchQuery(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPosts(ctx, "postRepository.Search", query, args...)
}

// GetPostByID retrieves a single post by identifier.
//
// Returns [ErrPostNotFound] when the identifier is absent. postID must be a
// well-formed UUID: the post_id column is typed uuid and Postgres rejects
// any other text with a cast error, so callers screen identifiers first.
func (p *postRepository) GetPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostByIDQuery(postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "postRepository.GetPostByID").Str("post_id", postID).Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// ListByOwner returns every post whose user_email equals email, newest first.
// Ownership authorization is enforced upstream by the access guard, not here.
func (p *postRepository) ListByOwner(ctx context.Context, email string) ([]models.Post, error) {
	query, args, err := buildListByOwnerQuery(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPosts(ctx, "postRepository.ListByOwner", query, args...)
}

// CreatePost persists a new post and returns the fully populated
// [models.Post] with server-assigned fields (PostID, CreatedAt).
//
// The identifier is generated here; callers never supply one.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.PostID = p.ids.Generate()

	row := p.DB.QueryRowContext(ctx, createPost,
		post.PostID,
		post.Title,
		post.PostType,
		post.ImageURL,
		post.Category,
		post.Location,
		post.Date,
		post.Description,
		post.UserEmail,
		post.IsRecovered,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrDuplicateIdentifier
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanPost(row)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// UpdatePost replaces the fixed updatable field set of the post identified
// by postID and returns the number of matched records.
//
// A zero matched count means the identifier was absent; that is a no-op for
// the caller, not an error. user_email and post_id are never touched.
func (p *postRepository) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, updatePost,
		update.Title,
		update.PostType,
		update.ImageURL,
		update.Category,
		update.Location,
		update.Date,
		update.Description,
		update.IsRecovered,
		postID,
	)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Str("post_id", postID).Msg("failed to execute update statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	matched, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Str("post_id", postID).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return matched, nil
}

// DeletePost removes the post identified by postID and returns the number
// of deleted records. A zero count for an absent identifier is not an error.
func (p *postRepository) DeletePost(ctx context.Context, postID string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("post_id", postID).Msg("failed to execute delete statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("post_id", postID).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// queryPosts runs a posts SELECT and scans the full result set.
func (p *postRepository) queryPosts(ctx context.Context, caller, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute posts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)

	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost scans one posts row in the [postColumns] order.
func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post

	err := row.Scan(
		&post.PostID,
		&post.Title,
		&post.PostType,
		&post.ImageURL,
		&post.Category,
		&post.Location,
		&post.Date,
		&post.Description,
		&post.UserEmail,
		&post.IsRecovered,
		&post.CreatedAt,
	)

	return post, err
}
