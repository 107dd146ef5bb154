package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// OrderService applies the order lifecycle against the order store. Every
// operation is a single store call; concurrent updates to the same id are not
// serialized here, the store's document-level atomicity is the only guarantee
// and the last writer wins.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// Create persists a new order. No field is required to be non-empty; the
// store assigns the identifier and the full persisted record is returned.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		CustomerName: input.CustomerName,
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		Price:        input.Price,
	}

	created, err := s.repo.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Msg("order created")
	return created, nil
}

// List returns all orders in store-native order. An empty store yields an
// empty slice, never an error.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}
	return orders, nil
}

// Update looks up the order, merges the patch under the falsy-coalescing
// policy (zero values mean "keep stored value") and persists the result.
func (s *OrderService) Update(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := existing.Merge(patch)
	if err := s.repo.Replace(ctx, &merged); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Msg("order updated")
	return &merged, nil
}

// Delete removes the order by id. Unknown ids surface ErrOrderNotFound and
// leave the store untouched.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
