package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/validators"
	"github.com/MKhiriev/where-is-it/models"
)

// mockRecoveredRepository implements store.RecoveredRepository for unit tests.
type mockRecoveredRepository struct {
	listByOwnerFn func(ctx context.Context, email string) ([]models.RecoveredItem, error)
	createFn      func(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error)
}

func (m *mockRecoveredRepository) ListRecoveredByOwner(ctx context.Context, email string) ([]models.RecoveredItem, error) {
	return m.listByOwnerFn(ctx, email)
}

func (m *mockRecoveredRepository) CreateRecoveredItem(ctx context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
	return m.createFn(ctx, item)
}

func newTestRecoveredService(repo *mockRecoveredRepository) RecoveredService {
	return NewRecoveredService(repo, validators.NewRegistryValidator(), logger.Nop())
}

var validRecoveredItem = models.RecoveredItem{
	UserEmail:     "a@x.com",
	PostID:        "0198c9a2-0000-7000-8000-000000000001",
	RecoveredDate: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
}

func TestCreateRecoveredItem_Valid(t *testing.T) {
	repo := &mockRecoveredRepository{
		createFn: func(_ context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
			item.RecoveredID = "generated-id"
			return item, nil
		},
	}

	created, err := newTestRecoveredService(repo).CreateRecoveredItem(context.Background(), validRecoveredItem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.RecoveredID != "generated-id" {
		t.Errorf("expected server-assigned identifier, got %q", created.RecoveredID)
	}
}

func TestCreateRecoveredItem_RejectsInvalidInput(t *testing.T) {
	repoCalled := false
	repo := &mockRecoveredRepository{
		createFn: func(_ context.Context, item models.RecoveredItem) (models.RecoveredItem, error) {
			repoCalled = true
			return item, nil
		},
	}
	svc := newTestRecoveredService(repo)

	invalid := validRecoveredItem
	invalid.PostID = "not-a-uuid"

	_, err := svc.CreateRecoveredItem(context.Background(), invalid)
	if !errors.Is(err, ErrInvalidDataProvided) {
		t.Fatalf("expected ErrInvalidDataProvided, got %v", err)
	}
	if repoCalled {
		t.Error("repository must not be called for invalid input")
	}
}

func TestListRecoveredByOwner_RejectsEmptyEmail(t *testing.T) {
	svc := newTestRecoveredService(&mockRecoveredRepository{})

	_, err := svc.ListRecoveredByOwner(context.Background(), "")
	if !errors.Is(err, ErrInvalidDataProvided) {
		t.Fatalf("expected ErrInvalidDataProvided, got %v", err)
	}
}

func TestListRecoveredByOwner_PassesThrough(t *testing.T) {
	repo := &mockRecoveredRepository{
		listByOwnerFn: func(_ context.Context, email string) ([]models.RecoveredItem, error) {
			return []models.RecoveredItem{validRecoveredItem}, nil
		},
	}

	items, err := newTestRecoveredService(repo).ListRecoveredByOwner(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}
