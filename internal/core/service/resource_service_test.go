package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

func TestResourceService_RejectsUnknownResource(t *testing.T) {
	svc := NewResourceService(&stubResourceRepo{counts: map[domain.Resource]int64{}}, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Resource("orders"), domain.Document{"x": 1})
	assert.ErrorIs(t, err, domain.ErrUnknownResource)

	_, err = svc.List(ctx, domain.Resource("reports"))
	assert.ErrorIs(t, err, domain.ErrUnknownResource)

	_, err = svc.Update(ctx, domain.Resource(""), "id", domain.Document{"x": 1})
	assert.ErrorIs(t, err, domain.ErrUnknownResource)

	err = svc.Delete(ctx, domain.Resource("users"), "id")
	assert.ErrorIs(t, err, domain.ErrUnknownResource)
}

func TestResourceService_DelegatesKnownResource(t *testing.T) {
	svc := NewResourceService(&stubResourceRepo{counts: map[domain.Resource]int64{}}, zerolog.Nop())

	doc, err := svc.Create(context.Background(), domain.ResourceSuppliers, domain.Document{"name": "Acme"})
	assert.NoError(t, err)
	assert.Equal(t, "Acme", doc["name"])
}
