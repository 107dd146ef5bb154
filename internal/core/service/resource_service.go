package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// ResourceService fronts the generic back-office collections. The collections
// are schemaless by design; this layer only guards the resource name and
// delegates the CRUD calls.
type ResourceService struct {
	repo   ports.ResourceRepository
	logger zerolog.Logger
}

func NewResourceService(repo ports.ResourceRepository, logger zerolog.Logger) *ResourceService {
	return &ResourceService{repo: repo, logger: logger}
}

func (s *ResourceService) Create(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error) {
	if !res.Valid() {
		return nil, domain.ErrUnknownResource
	}
	created, err := s.repo.Insert(ctx, res, doc)
	if err != nil {
		s.logger.Error().Err(err).Str("resource", string(res)).Msg("failed to create document")
		return nil, err
	}
	return created, nil
}

func (s *ResourceService) List(ctx context.Context, res domain.Resource) ([]domain.Document, error) {
	if !res.Valid() {
		return nil, domain.ErrUnknownResource
	}
	return s.repo.FindAll(ctx, res)
}

func (s *ResourceService) Update(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error) {
	if !res.Valid() {
		return nil, domain.ErrUnknownResource
	}
	return s.repo.Update(ctx, res, id, doc)
}

func (s *ResourceService) Delete(ctx context.Context, res domain.Resource, id string) error {
	if !res.Valid() {
		return domain.ErrUnknownResource
	}
	return s.repo.Delete(ctx, res, id)
}
