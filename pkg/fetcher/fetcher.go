package fetcher

import (
	"context"

	"github.com/altverseweb3/analytics-fetcher/pkg/catalog"
	"github.com/altverseweb3/analytics-fetcher/pkg/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fetcher executes the full query catalog and assembles the aggregated
// report.
type Fetcher struct {
	client *Client
	log    *logrus.Logger
}

// New creates a fetcher using the given client for all queries.
func New(client *Client, log *logrus.Logger) *Fetcher {
	if log == nil {
		log = logrus.New()
	}
	return &Fetcher{
		client: client,
		log:    log,
	}
}

// Run executes every catalog query in order and returns a fully populated
// report. Per-query failures are recorded as sentinels in the report and
// logged; Run itself never fails once configuration has been validated.
func (f *Fetcher) Run(ctx context.Context) *report.Report {
	runLog := f.log.WithField("run_id", uuid.NewString())
	runLog.WithField("endpoint", f.client.Endpoint()).Info("Starting analytics batch")

	rep := &report.Report{}

	runLog.Info("Fetching all-time stats")
	for _, desc := range catalog.TotalQueries() {
		queryLog := runLog.WithField("query", desc.QueryType)
		queryLog.Debug("Fetching")

		result := f.client.Query(ctx, desc)
		if result.IsError() {
			queryLog.Warnf("Query failed: %s", result.ErrorMessage())
		}
		if err := rep.SetTotal(desc.QueryType, result); err != nil {
			queryLog.Errorf("Failed to record result: %v", err)
		}
	}

	for _, job := range catalog.PeriodJobs() {
		jobLog := runLog.WithField("period_type", job.PeriodType)
		jobLog.Infof("Fetching %s stats (limit=%d)", job.PeriodType, job.Limit)

		group, err := rep.PeriodicStats.Group(job.PeriodType)
		if err != nil {
			jobLog.Errorf("Failed to resolve period group: %v", err)
			continue
		}

		for _, queryType := range catalog.PeriodicQueryTypes() {
			queryLog := jobLog.WithField("query", queryType)
			queryLog.Debug("Fetching")

			result := f.client.Query(ctx, catalog.Descriptor{
				QueryType:  queryType,
				PeriodType: job.PeriodType,
				Limit:      job.Limit,
			})
			if result.IsError() {
				queryLog.Warnf("Query failed: %s", result.ErrorMessage())
			}
			if err := group.Set(queryType, result); err != nil {
				queryLog.Errorf("Failed to record result: %v", err)
			}
		}
	}

	runLog.Info("Analytics batch complete")
	return rep
}
