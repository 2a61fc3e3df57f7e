package models

import "time"

// PostType classifies a post as describing a lost or a found item.
type PostType string

const (
	// PostTypeLost marks a post about an item its owner has lost.
	PostTypeLost PostType = "lost"

	// PostTypeFound marks a post about an item somebody has found.
	PostTypeFound PostType = "found"
)

// Post represents a single lost-or-found item record.
// It is owned by the user who created it; ownership is expressed through
// UserEmail and never changes after creation.
type Post struct {
	// PostID is the server-generated unique identifier of the post.
	// It is immutable for the lifetime of the record.
	PostID string `json:"postId"`

	// Title is the short human-readable headline of the post.
	Title string `json:"title"`

	// PostType tells whether the item was lost or found.
	PostType PostType `json:"postType"`

	// ImageURL points at a photo of the item. May be empty.
	ImageURL string `json:"imageUrl"`

	// Category is a free-form grouping label (e.g. "wallet", "pet").
	Category string `json:"category"`

	// Location describes where the item was lost or found.
	Location string `json:"location"`

	// Date is when the item was lost or found, as reported by the user.
	Date time.Time `json:"date"`

	// Description holds the free-form details of the post.
	Description string `json:"description"`

	// UserEmail identifies the owner of the post. Set at creation time
	// and excluded from the updatable field set.
	UserEmail string `json:"userEmail"`

	// IsRecovered reports whether the item has been marked recovered.
	IsRecovered bool `json:"isRecovered"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// PostUpdate carries the fixed set of fields that PATCH /items/:id is
// allowed to replace. PostID and UserEmail are deliberately absent:
// neither is updatable through this operation.
type PostUpdate struct {
	Title       string    `json:"title"`
	PostType    PostType  `json:"postType"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	IsRecovered bool      `json:"isRecovered"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
