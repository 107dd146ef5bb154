package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// ReportService aggregates headline figures across the order store and the
// back-office collections. Results are served from the cache when fresh;
// cache failures degrade to a live computation rather than failing the call.
type ReportService struct {
	orders    ports.OrderRepository
	resources ports.ResourceRepository
	cache     ports.ReportCache
	logger    zerolog.Logger
}

func NewReportService(orders ports.OrderRepository, resources ports.ResourceRepository, cache ports.ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{orders: orders, resources: resources, cache: cache, logger: logger}
}

func (s *ReportService) Summary(ctx context.Context) (*ports.ReportSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("report cache unavailable")
		} else if cached != nil {
			cached.Cached = true
			return cached, nil
		}
	}

	all, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &ports.ReportSummary{
		OrderCount:    int64(len(all)),
		ResourceCount: make(map[string]int64, len(domain.Resources)),
	}
	for _, o := range all {
		summary.OrderRevenue += o.Price * float64(o.Quantity)
	}
	for _, res := range domain.Resources {
		n, err := s.resources.Count(ctx, res)
		if err != nil {
			return nil, err
		}
		summary.ResourceCount[string(res)] = n
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn().Err(err).Msg("report cache write failed")
		}
	}
	return summary, nil
}
