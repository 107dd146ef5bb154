package ports

import (
	"context"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

// ResourceService defines the CRUD use cases shared by the back-office
// collections.
type ResourceService interface {
	Create(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error)
	List(ctx context.Context, res domain.Resource) ([]domain.Document, error)
	Update(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error)
	Delete(ctx context.Context, res domain.Resource, id string) error
}
