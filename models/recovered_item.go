package models

import "time"

// RecoveredItem records that a posted item was recovered and returned.
// It logically references a Post by PostID, but no foreign-key integrity
// is enforced between the two tables; keeping them consistent is the
// caller's responsibility.
type RecoveredItem struct {
	// RecoveredID is the server-generated unique identifier of the record.
	RecoveredID string `json:"recoveredId"`

	// UserEmail identifies the owner of the recovery record.
	UserEmail string `json:"userEmail"`

	// PostID is the identifier of the recovered post.
	PostID string `json:"postId"`

	// RecoveredLocation is where the item was handed back.
	RecoveredLocation string `json:"recoveredLocation"`

	// RecoveredDate is when the item was handed back.
	RecoveredDate time.Time `json:"recoveredDate"`

	// RecipientName is the person who received the item.
	RecipientName string `json:"recipientName"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the RecoveredItem model.
func (r RecoveredItem) TableName() string {
	return "recovered"
}
