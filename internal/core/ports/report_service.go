package ports

import "context"

// ReportSummary aggregates headline figures across the store.
type ReportSummary struct {
	OrderCount    int64            `json:"orderCount"`
	OrderRevenue  float64          `json:"orderRevenue"`
	ResourceCount map[string]int64 `json:"resourceCounts"`
	Cached        bool             `json:"cached"`
}

// ReportService computes (and caches) the back-office summary report.
type ReportService interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

// ReportCache holds a recently computed summary for a short TTL. A miss is
// reported as (nil, nil); only transport failures return an error.
type ReportCache interface {
	Get(ctx context.Context) (*ReportSummary, error)
	Set(ctx context.Context, summary *ReportSummary) error
}
