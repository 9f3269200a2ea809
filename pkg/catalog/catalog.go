// Package catalog defines the fixed set of queries issued against the
// analytics endpoint. It is pure configuration: changing the analytics
// surface means editing this package only.
package catalog

// Query type names understood by the analytics endpoint.
const (
	TotalUsers         = "total_users"
	TotalActivityStats = "total_activity_stats"
	TotalSwapStats     = "total_swap_stats"
	TotalLendingStats  = "total_lending_stats"
	TotalEarnStats     = "total_earn_stats"

	PeriodicUserStats     = "periodic_user_stats"
	PeriodicActivityStats = "periodic_activity_stats"
	PeriodicSwapStats     = "periodic_swap_stats"
	PeriodicLendingStats  = "periodic_lending_stats"
	PeriodicEarnStats     = "periodic_earn_stats"
)

// Period types for periodic queries.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Descriptor is a single named query request sent to the analytics
// endpoint. PeriodType and Limit are set only for periodic queries;
// Limit bounds how many historical periods the endpoint returns.
type Descriptor struct {
	QueryType  string `json:"queryType"`
	PeriodType string `json:"period_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// PeriodJob pairs a period type with its history depth.
type PeriodJob struct {
	PeriodType string
	Limit      int
}

// TotalQueries returns the one-shot descriptors in execution order.
func TotalQueries() []Descriptor {
	return []Descriptor{
		{QueryType: TotalUsers},
		{QueryType: TotalActivityStats},
		{QueryType: TotalSwapStats},
		{QueryType: TotalLendingStats},
		{QueryType: TotalEarnStats},
	}
}

// PeriodJobs returns the periodic job parameters in execution order.
func PeriodJobs() []PeriodJob {
	return []PeriodJob{
		{PeriodType: PeriodDaily, Limit: 30},
		{PeriodType: PeriodWeekly, Limit: 54},
		{PeriodType: PeriodMonthly, Limit: 24},
	}
}

// PeriodicQueryTypes returns the periodic query type names in execution order.
func PeriodicQueryTypes() []string {
	return []string{
		PeriodicUserStats,
		PeriodicActivityStats,
		PeriodicSwapStats,
		PeriodicLendingStats,
		PeriodicEarnStats,
	}
}

// All returns every descriptor issued in a single run, in execution order:
// the five one-shot queries first, then the five periodic queries for each
// of daily, weekly and monthly. Twenty descriptors total.
func All() []Descriptor {
	descriptors := TotalQueries()
	for _, job := range PeriodJobs() {
		for _, queryType := range PeriodicQueryTypes() {
			descriptors = append(descriptors, Descriptor{
				QueryType:  queryType,
				PeriodType: job.PeriodType,
				Limit:      job.Limit,
			})
		}
	}
	return descriptors
}
