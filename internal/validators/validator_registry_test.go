package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/where-is-it/models"
	"github.com/stretchr/testify/assert"
)

var validPost = models.Post{
	Title:     "Lost Wallet",
	PostType:  models.PostTypeLost,
	ImageURL:  "https://img.example/wallet.jpg",
	Category:  "wallet",
	Location:  "Park",
	Date:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	UserEmail: "a@x.com",
}

func TestValidatePost(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.Post)
		wantErr bool
	}{
		{name: "valid post", mutate: func(p *models.Post) {}},
		{name: "empty image url allowed", mutate: func(p *models.Post) { p.ImageURL = "" }},
		{name: "missing title", mutate: func(p *models.Post) { p.Title = "" }, wantErr: true},
		{name: "unknown post type", mutate: func(p *models.Post) { p.PostType = "stolen" }, wantErr: true},
		{name: "missing location", mutate: func(p *models.Post) { p.Location = "" }, wantErr: true},
		{name: "zero date", mutate: func(p *models.Post) { p.Date = time.Time{} }, wantErr: true},
		{name: "missing owner email", mutate: func(p *models.Post) { p.UserEmail = "" }, wantErr: true},
		{name: "malformed owner email", mutate: func(p *models.Post) { p.UserEmail = "not-an-email" }, wantErr: true},
		{name: "malformed image url", mutate: func(p *models.Post) { p.ImageURL = "::not a url::" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost
			tt.mutate(&post)

			err := v.Validate(ctx, post)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePost_PointerAccepted(t *testing.T) {
	v := NewRegistryValidator()
	post := validPost
	assert.NoError(t, v.Validate(context.Background(), &post))
}

func TestValidatePostUpdate(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	valid := models.PostUpdate{
		Title:    "Lost Wallet",
		PostType: models.PostTypeFound,
		Location: "Park",
		Date:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, v.Validate(ctx, valid))

	invalid := valid
	invalid.PostType = ""
	assert.Error(t, v.Validate(ctx, invalid))
}

func TestValidateRecoveredItem(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	valid := models.RecoveredItem{
		UserEmail:     "a@x.com",
		PostID:        "0198c9a2-0000-7000-8000-000000000001",
		RecoveredDate: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, v.Validate(ctx, valid))

	invalid := valid
	invalid.PostID = "not-a-uuid"
	assert.Error(t, v.Validate(ctx, invalid))

	invalid = valid
	invalid.UserEmail = ""
	assert.Error(t, v.Validate(ctx, invalid))
}

func TestValidateSessionClaims(t *testing.T) {
	v := NewRegistryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SessionClaims{Email: "a@x.com"}))
	assert.Error(t, v.Validate(ctx, models.SessionClaims{}))
	assert.Error(t, v.Validate(ctx, models.SessionClaims{Email: "not-an-email"}))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRegistryValidator()
	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
