package ports

import (
	"context"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Implementations
// return domain.ErrOrderNotFound for unknown ids and domain.ErrInvalidOrderID
// when the id is not a valid store identifier.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Replace(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
