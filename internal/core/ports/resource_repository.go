package ports

import (
	"context"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

// ResourceRepository is the generic document store behind the back-office
// collections (suppliers, inventory, sales, employees). All collections share
// one CRUD shape over schemaless documents.
type ResourceRepository interface {
	Insert(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error)
	FindAll(ctx context.Context, res domain.Resource) ([]domain.Document, error)
	Update(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error)
	Delete(ctx context.Context, res domain.Resource, id string) error
	Count(ctx context.Context, res domain.Resource) (int64, error)
}
