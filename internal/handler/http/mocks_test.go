package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/service"
	"github.com/MKhiriev/where-is-it/models"
)

// ---- function-field service mocks ----

type mockSessionService struct {
	issueSessionFn func(ctx context.Context, claims models.SessionClaims) (models.Token, error)
	parseSessionFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockSessionService) IssueSession(ctx context.Context, claims models.SessionClaims) (models.Token, error) {
	return m.issueSessionFn(ctx, claims)
}

func (m *mockSessionService) ParseSession(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseSessionFn(ctx, tokenString)
}

type mockPostService struct {
	countFn       func(ctx context.Context) (int64, error)
	listPageFn    func(ctx context.Context, page, size int64) ([]models.Post, error)
	listLatestFn  func(ctx context.Context) ([]models.Post, error)
	searchFn      func(ctx context.Context, text string) ([]models.Post, error)
	getPostFn     func(ctx context.Context, postID string) (models.Post, error)
	listByOwnerFn func(ctx context.Context, email string) ([]models.Post, error)
	createPostFn  func(ctx context.Context, post models.Post) (models.Post, error)
	updatePostFn  func(ctx context.Context, postID string, update models.PostUpdate) (int64, error)
	deletePostFn  func(ctx context.Context, postID string) (int64, error)
}

func (m *mockPostService) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockPostService) ListPage(ctx context.Context, page, size int64) ([]models.Post, error) {
	return m.listPageFn(ctx, page, size)
}

func (m *mockPostService) ListLatest(ctx context.Context) ([]models.Post, error) {
	return m.listLatestFn(ctx)
}

func (m *mockPostService) Search(ctx context.Context, text string) ([]models.Post, error) {
	return m.searchFn(ctx, text)
}

func (m *mockPostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) ListByOwner(ctx context.Context, email string) ([]models.Post, error) {
	return m.listByOwnerFn(ctx, email)
}

func (m *mockPostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, post)
}

func (m *mockPostService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (int64, error) {
	return m.updatePostFn(ctx, postID, update)
}

func (m *mockPostService) DeletePost(ctx context.Context, postID string) (int64, error) {
	return m.deletePostFn(ctx, postID)
}

type mockRecoveredService struct {
	listRecoveredByOwnerFn func(ctx context.Context, email string) ([]models.RecoveredItem, error)
	createRecoveredItemFn  func(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error)
}

func (m *mockRecoveredService) ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error) {
	return m.listRecoveredByOwnerFn(ctx, email)
}

func (m *mockRecoveredService) CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
	return m.createRecoveredItemFn(ctx, item)
}

// ---- helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so that handlers
// invoked outside the full middleware chain do not log to stdout.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
