package models

// Write-operation result documents returned by the HTTP API. The field names
// mirror the database driver's result shape so existing clients can keep
// reading insertedId / matchedCount / deletedCount.

// InsertResult is returned after a successful create operation.
type InsertResult struct {
	// InsertedID is the identifier the store assigned to the new record.
	InsertedID string `json:"insertedId"`
}

// UpdateResult is returned after an update operation.
type UpdateResult struct {
	// MatchedCount is the number of records the update matched.
	// Zero means the identifier was absent; that is a no-op, not an error.
	MatchedCount int64 `json:"matchedCount"`
}

// DeleteResult is returned after a delete operation.
type DeleteResult struct {
	// DeletedCount is the number of records removed. Zero means the
	// identifier was absent.
	DeletedCount int64 `json:"deletedCount"`
}

// CountResult is returned by the total-posts-count endpoint.
type CountResult struct {
	// Count is the estimated number of posts in the registry.
	Count int64 `json:"count"`
}
