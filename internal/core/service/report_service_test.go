package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

type stubResourceRepo struct {
	counts map[domain.Resource]int64
}

func (r *stubResourceRepo) Insert(_ context.Context, res domain.Resource, doc domain.Document) (domain.Document, error) {
	return doc, nil
}

func (r *stubResourceRepo) FindAll(_ context.Context, _ domain.Resource) ([]domain.Document, error) {
	return nil, nil
}

func (r *stubResourceRepo) Update(_ context.Context, _ domain.Resource, _ string, doc domain.Document) (domain.Document, error) {
	return doc, nil
}

func (r *stubResourceRepo) Delete(_ context.Context, _ domain.Resource, _ string) error {
	return nil
}

func (r *stubResourceRepo) Count(_ context.Context, res domain.Resource) (int64, error) {
	return r.counts[res], nil
}

type stubReportCache struct {
	stored *ports.ReportSummary
	getErr error
	sets   int
}

func (c *stubReportCache) Get(_ context.Context) (*ports.ReportSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubReportCache) Set(_ context.Context, summary *ports.ReportSummary) error {
	c.sets++
	c.stored = summary
	return nil
}

func seedOrders(t *testing.T, repo *stubOrderRepo) {
	t.Helper()
	ctx := context.Background()
	for _, o := range []domain.Order{
		{CustomerName: "Ada", ProductName: "Widget", Quantity: 2, Price: 10},
		{CustomerName: "Bob", ProductName: "Gadget", Quantity: 1, Price: 5.5},
	} {
		o := o
		_, err := repo.Insert(ctx, &o)
		require.NoError(t, err)
	}
}

func TestReportService_Summary_ComputesAndCaches(t *testing.T) {
	orders := newStubOrderRepo()
	seedOrders(t, orders)
	resources := &stubResourceRepo{counts: map[domain.Resource]int64{
		domain.ResourceSuppliers: 3,
		domain.ResourceEmployees: 7,
	}}
	cache := &stubReportCache{}

	svc := NewReportService(orders, resources, cache, zerolog.Nop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.OrderCount)
	assert.Equal(t, 25.5, summary.OrderRevenue) // 2*10 + 1*5.5
	assert.Equal(t, int64(3), summary.ResourceCount["suppliers"])
	assert.Equal(t, int64(7), summary.ResourceCount["employees"])
	assert.False(t, summary.Cached)
	assert.Equal(t, 1, cache.sets)

	// Second call is served from the cache.
	again, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, 1, cache.sets)
}

func TestReportService_Summary_CacheFailureDegradesToLive(t *testing.T) {
	orders := newStubOrderRepo()
	seedOrders(t, orders)
	cache := &stubReportCache{getErr: errors.New("redis down")}

	svc := NewReportService(orders, &stubResourceRepo{counts: map[domain.Resource]int64{}}, cache, zerolog.Nop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.OrderCount)
	assert.False(t, summary.Cached)
}
