package venue

import (
	"context"

	domain "eventease/internal/domain/venue"
)

// Store persists Venue state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Venue, error)
	Insert(ctx context.Context, value domain.Venue) (int64, error)
	Update(ctx context.Context, value domain.Venue) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]domain.Venue, error)
}
