package report

import (
	"fmt"

	"github.com/altverseweb3/analytics-fetcher/pkg/catalog"
)

// Report is the aggregated document produced by one full batch run. Field
// declaration order fixes the key order of the serialized JSON, so the
// output file always reads in catalog order. Every catalog query has a
// slot here regardless of whether its call succeeded.
type Report struct {
	TotalUsers         QueryResult   `json:"total_users"`
	TotalActivityStats QueryResult   `json:"total_activity_stats"`
	TotalSwapStats     QueryResult   `json:"total_swap_stats"`
	TotalLendingStats  QueryResult   `json:"total_lending_stats"`
	TotalEarnStats     QueryResult   `json:"total_earn_stats"`
	PeriodicStats      PeriodicStats `json:"periodic_stats"`
}

// PeriodicStats groups the periodic query results by period type.
type PeriodicStats struct {
	Daily   PeriodGroup `json:"daily"`
	Weekly  PeriodGroup `json:"weekly"`
	Monthly PeriodGroup `json:"monthly"`
}

// PeriodGroup holds the five periodic query results for one period type.
type PeriodGroup struct {
	PeriodicUserStats     QueryResult `json:"periodic_user_stats"`
	PeriodicActivityStats QueryResult `json:"periodic_activity_stats"`
	PeriodicSwapStats     QueryResult `json:"periodic_swap_stats"`
	PeriodicLendingStats  QueryResult `json:"periodic_lending_stats"`
	PeriodicEarnStats     QueryResult `json:"periodic_earn_stats"`
}

// SetTotal records the result for a one-shot query type.
func (r *Report) SetTotal(queryType string, result QueryResult) error {
	switch queryType {
	case catalog.TotalUsers:
		r.TotalUsers = result
	case catalog.TotalActivityStats:
		r.TotalActivityStats = result
	case catalog.TotalSwapStats:
		r.TotalSwapStats = result
	case catalog.TotalLendingStats:
		r.TotalLendingStats = result
	case catalog.TotalEarnStats:
		r.TotalEarnStats = result
	default:
		return fmt.Errorf("unknown total query type: %s", queryType)
	}
	return nil
}

// Group returns the result group for a period type.
func (p *PeriodicStats) Group(periodType string) (*PeriodGroup, error) {
	switch periodType {
	case catalog.PeriodDaily:
		return &p.Daily, nil
	case catalog.PeriodWeekly:
		return &p.Weekly, nil
	case catalog.PeriodMonthly:
		return &p.Monthly, nil
	default:
		return nil, fmt.Errorf("unknown period type: %s", periodType)
	}
}

// Set records the result for a periodic query type.
func (g *PeriodGroup) Set(queryType string, result QueryResult) error {
	switch queryType {
	case catalog.PeriodicUserStats:
		g.PeriodicUserStats = result
	case catalog.PeriodicActivityStats:
		g.PeriodicActivityStats = result
	case catalog.PeriodicSwapStats:
		g.PeriodicSwapStats = result
	case catalog.PeriodicLendingStats:
		g.PeriodicLendingStats = result
	case catalog.PeriodicEarnStats:
		g.PeriodicEarnStats = result
	default:
		return fmt.Errorf("unknown periodic query type: %s", queryType)
	}
	return nil
}

// Get returns the recorded result for a periodic query type.
func (g *PeriodGroup) Get(queryType string) (QueryResult, error) {
	switch queryType {
	case catalog.PeriodicUserStats:
		return g.PeriodicUserStats, nil
	case catalog.PeriodicActivityStats:
		return g.PeriodicActivityStats, nil
	case catalog.PeriodicSwapStats:
		return g.PeriodicSwapStats, nil
	case catalog.PeriodicLendingStats:
		return g.PeriodicLendingStats, nil
	case catalog.PeriodicEarnStats:
		return g.PeriodicEarnStats, nil
	default:
		return QueryResult{}, fmt.Errorf("unknown periodic query type: %s", queryType)
	}
}
