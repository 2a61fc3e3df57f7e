package validators

import (
	"context"

	"github.com/MKhiriev/where-is-it/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var allowedPostTypes = []interface{}{
	models.PostTypeLost,
	models.PostTypeFound,
}

// RegistryValidator validates the entities crossing the HTTP boundary
// (Post, PostUpdate, RecoveredItem, SessionClaims) before they reach the
// store, so malformed input is rejected instead of persisted.
type RegistryValidator struct {
}

func NewRegistryValidator() Validator {
	return &RegistryValidator{}
}

func (v *RegistryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.validatePost(ctx, value)
	case *models.Post:
		return v.validatePost(ctx, *value)

	case models.PostUpdate:
		return v.validatePostUpdate(ctx, value)
	case *models.PostUpdate:
		return v.validatePostUpdate(ctx, *value)

	case models.RecoveredItem:
		return v.validateRecoveredItem(ctx, value)
	case *models.RecoveredItem:
		return v.validateRecoveredItem(ctx, *value)

	case models.SessionClaims:
		return v.validateSessionClaims(ctx, value)
	case *models.SessionClaims:
		return v.validateSessionClaims(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RegistryValidator) validatePost(_ context.Context, post models.Post) error {
	return validation.ValidateStruct(&post,
		validation.Field(&post.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&post.PostType, validation.Required, validation.In(allowedPostTypes...)),
		validation.Field(&post.ImageURL, is.URL),
		validation.Field(&post.Location, validation.Required),
		validation.Field(&post.Date, validation.Required),
		validation.Field(&post.UserEmail, validation.Required, is.Email),
	)
}

func (v *RegistryValidator) validatePostUpdate(_ context.Context, update models.PostUpdate) error {
	return validation.ValidateStruct(&update,
		validation.Field(&update.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&update.PostType, validation.Required, validation.In(allowedPostTypes...)),
		validation.Field(&update.ImageURL, is.URL),
		validation.Field(&update.Location, validation.Required),
		validation.Field(&update.Date, validation.Required),
	)
}

func (v *RegistryValidator) validateRecoveredItem(_ context.Context, item models.RecoveredItem) error {
	return validation.ValidateStruct(&item,
		validation.Field(&item.UserEmail, validation.Required, is.Email),
		validation.Field(&item.PostID, validation.Required, is.UUID),
		validation.Field(&item.RecoveredDate, validation.Required),
	)
}

func (v *RegistryValidator) validateSessionClaims(_ context.Context, claims models.SessionClaims) error {
	return validation.ValidateStruct(&claims,
		validation.Field(&claims.Email, validation.Required, is.Email),
	)
}
