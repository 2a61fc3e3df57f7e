package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createPost = `INSERT INTO posts (post_id, title, post_type, image_url, category, location, date, description, user_email, is_recovered)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING post_id, title, post_type, image_url, category, location, date, description, user_email, is_recovered, created_at;`

	// updatePost replaces exactly the fixed updatable field set. post_id and
	// user_email are deliberately not part of the SET clause.
	updatePost = `UPDATE posts
    SET title = $1, post_type = $2, image_url = $3, category = $4, location = $5, date = $6, description = $7, is_recovered = $8
    WHERE post_id = $9;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`

	// countPostsEstimate reads the planner's row estimate for the posts
	// table. It is eventually consistent (updated by autovacuum/ANALYZE)
	// and returns -1 for a table that has never been analyzed. The regclass
	// cast resolves via the search path, so a posts relation in another
	// schema cannot be picked up by name.
	countPostsEstimate = `SELECT reltuples::bigint
    FROM pg_class
    WHERE oid = 'posts'::regclass;`

	countPostsExact = `SELECT COUNT(*) FROM posts;`

	createRecoveredItem = `INSERT INTO recovered (recovered_id, user_email, post_id, recovered_location, recovered_date, recipient_name)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING recovered_id, user_email, post_id, recovered_location, recovered_date, recipient_name, created_at;`
)

// postColumns is the canonical column order shared by every posts SELECT and
// the row-scanning code in repository_post.go.
var postColumns = []string{
	"post_id",
	"title",
	"post_type",
	"image_url",
	"category",
	"location",
	"date",
	"description",
	"user_email",
	"is_recovered",
	"created_at",
}

// recoveredColumns is the canonical column order for the recovered table.
var recoveredColumns = []string{
	"recovered_id",
	"user_email",
	"post_id",
	"recovered_location",
	"recovered_date",
	"recipient_name",
	"created_at",
}

// psql builds Postgres-flavoured ($1, $2, ...) queries for all dynamic read
// paths.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPageQuery selects one page of posts: skip page*size, take size.
// Ordering by created_at keeps the collection order stable so that page
// unions reconstruct the full snapshot without duplicates.
func buildListPageQuery(page, size int64) (string, []any, error) {
	return psql.
		Select(postColumns...).
		From("posts").
		OrderBy("created_at", "post_id").
		Offset(uint64(page * size)).
		Limit(uint64(size)).
		ToSql()
}

// buildListLatestQuery selects the `limit` most recent posts by their
// user-reported date, newest first. post_id breaks ties between posts
// sharing a date so repeated calls return a stable slice.
func buildListLatestQuery(limit uint64) (string, []any, error) {
	return psql.
		Select(postColumns...).
		From("posts").
		OrderBy("date DESC", "post_id").
		Limit(limit).
		ToSql()
}

// buildSearchQuery matches posts whose title OR location contains text as a
// substring. Matching is case-insensitive (ILIKE); the search text itself is
// passed as a parameter, so no pattern injection is possible beyond % and _.
func buildSearchQuery(text string) (string, []any, error) {
	pattern := "%" + text + "%"
	return psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"location": pattern},
		}).
		OrderBy("created_at", "post_id").
		ToSql()
}

// buildGetPostByIDQuery selects a single post by identifier.
func buildGetPostByIDQuery(postID string) (string, []any, error) {
	return psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

// buildListByOwnerQuery selects every post owned by the given email,
// newest first.
func buildListByOwnerQuery(email string) (string, []any, error) {
	return psql.
		Select(postColumns...).
		From("posts").
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildListRecoveredByOwnerQuery selects every recovery record owned by the
// given email, newest first.
func buildListRecoveredByOwnerQuery(email string) (string, []any, error) {
	return psql.
		Select(recoveredColumns...).
		From("recovered").
		Where(sq.Eq{"user_email": email}).
		OrderBy("created_at DESC").
		ToSql()
}
