package store

import (
	"context"
	"errors"

	"stipendtriage/internal/model"
)

// ErrNotFound is returned when no record exists for the given identifier.
var ErrNotFound = errors.New("record not found")

// ApplicationStore persists full applications, including all submitted PII.
// Save is an idempotent upsert keyed by application ID.
type ApplicationStore interface {
	Save(ctx context.Context, app model.Application) error
	GetByID(ctx context.Context, id string) (model.Application, error)
	GetAll(ctx context.Context) ([]model.Application, error)
	Clear(ctx context.Context) error
}

// HandoffStore persists the minimal-PII handoff records, keyed by the same
// application ID as the source application. Delivery state is store metadata
// used by the dispatcher, never part of the record itself.
type HandoffStore interface {
	Save(ctx context.Context, rec model.HandoffRecord) error
	GetByID(ctx context.Context, id string) (model.HandoffRecord, error)
	GetAll(ctx context.Context) ([]model.HandoffRecord, error)
	GetUndelivered(ctx context.Context, limit int) ([]model.HandoffRecord, error)
	MarkDelivered(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
