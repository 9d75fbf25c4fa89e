package event

import (
	"context"

	domain "eventease/internal/domain/event"
)

// Store persists Event state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Event, error)
	Insert(ctx context.Context, value domain.Event) (int64, error)
	Update(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]domain.Event, error)
}
