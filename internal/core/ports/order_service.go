package ports

import (
	"context"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

// CreateOrderInput carries the four order fields. None is required: absent
// values are persisted as-is, matching the deliberately minimal validation of
// this resource.
type CreateOrderInput struct {
	CustomerName string
	ProductName  string
	Quantity     int
	Price        float64
}

// OrderService defines the order lifecycle use cases.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
