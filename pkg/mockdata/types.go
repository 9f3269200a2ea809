// Package mockdata produces synthetic dApp analytics documents matching
// the shape the analytics endpoint returns. It exists to pin down the
// output schema and to feed the mock endpoint and tests; it is not part
// of the fetch pipeline.
package mockdata

// UserStatsPoint is one period of user counts.
type UserStatsPoint struct {
	PeriodStart string `json:"period_start"`
	NewUsers    int    `json:"new_users"`
	ActiveUsers int    `json:"active_users"`
}

// ActivityStatsPoint is one period of overall activity.
type ActivityStatsPoint struct {
	PeriodStart               string `json:"period_start"`
	TotalTransactions         int    `json:"total_transactions"`
	SwapCount                 int    `json:"swap_count"`
	LendingCount              int    `json:"lending_count"`
	EarnCount                 int    `json:"earn_count"`
	DappEntrances             int    `json:"dapp_entrances"`
	ActiveUsers               int    `json:"active_users"`
	TransactionsPerActiveUser int    `json:"transactions_per_active_user"`
}

// SwapStatsPoint is one period of swap activity. Route keys are
// "<from>,<to>" chain pairs in lower case; a pair with equal halves is a
// same-chain swap.
type SwapStatsPoint struct {
	PeriodStart     string         `json:"period_start"`
	TotalSwapCount  int            `json:"total_swap_count"`
	SwapRoutes      map[string]int `json:"swap_routes"`
	CrossChainCount int            `json:"cross_chain_count"`
	SameChainCount  int            `json:"same_chain_count"`
}

// LendingBreakdown is lending activity for one chain/market pair.
type LendingBreakdown struct {
	Chain  string `json:"chain"`
	Market string `json:"market"`
	Count  int    `json:"count"`
}

// LendingStatsPoint is one period of lending activity.
type LendingStatsPoint struct {
	PeriodStart       string             `json:"period_start"`
	TotalLendingCount int                `json:"total_lending_count"`
	Breakdown         []LendingBreakdown `json:"breakdown"`
}

// EarnStatsPoint is one period of earn activity. ByChainProtocol keys are
// "<chain>#<protocol>".
type EarnStatsPoint struct {
	PeriodStart     string         `json:"period_start"`
	TotalEarnCount  int            `json:"total_earn_count"`
	ByChain         map[string]int `json:"by_chain"`
	ByProtocol      map[string]int `json:"by_protocol"`
	ByChainProtocol map[string]int `json:"by_chain_protocol"`
}

// TotalUsers is the all-time user count payload.
type TotalUsers struct {
	TotalUsers int `json:"total_users"`
}

// TotalActivityStats is the all-time activity payload.
type TotalActivityStats struct {
	TotalTransactions int `json:"total_transactions"`
	SwapCount         int `json:"swap_count"`
	LendingCount      int `json:"lending_count"`
	EarnCount         int `json:"earn_count"`
	DappEntrances     int `json:"dapp_entrances"`
	TotalUsers        int `json:"total_users"`
}

// TotalSwapStats is the all-time swap payload.
type TotalSwapStats struct {
	TotalSwapCount  int            `json:"total_swap_count"`
	SwapRoutes      map[string]int `json:"swap_routes"`
	CrossChainCount int            `json:"cross_chain_count"`
	SameChainCount  int            `json:"same_chain_count"`
}

// TotalLendingStats is the all-time lending payload.
type TotalLendingStats struct {
	TotalLendingCount int                `json:"total_lending_count"`
	Breakdown         []LendingBreakdown `json:"breakdown"`
}

// TotalEarnStats is the all-time earn payload.
type TotalEarnStats struct {
	TotalEarnCount  int            `json:"total_earn_count"`
	ByChain         map[string]int `json:"by_chain"`
	ByProtocol      map[string]int `json:"by_protocol"`
	ByChainProtocol map[string]int `json:"by_chain_protocol"`
}

// PeriodicStats bundles the five periodic series for one period type.
type PeriodicStats struct {
	PeriodicUserStats     []UserStatsPoint     `json:"periodic_user_stats"`
	PeriodicActivityStats []ActivityStatsPoint `json:"periodic_activity_stats"`
	PeriodicSwapStats     []SwapStatsPoint     `json:"periodic_swap_stats"`
	PeriodicLendingStats  []LendingStatsPoint  `json:"periodic_lending_stats"`
	PeriodicEarnStats     []EarnStatsPoint     `json:"periodic_earn_stats"`
}

// AllPeriodic groups the periodic series by period type.
type AllPeriodic struct {
	Daily   PeriodicStats `json:"daily"`
	Weekly  PeriodicStats `json:"weekly"`
	Monthly PeriodicStats `json:"monthly"`
}

// Document is a complete synthetic analytics document. It marshals to the
// same shape as a fully successful aggregated report.
type Document struct {
	TotalUsers         TotalUsers         `json:"total_users"`
	TotalActivityStats TotalActivityStats `json:"total_activity_stats"`
	TotalSwapStats     TotalSwapStats     `json:"total_swap_stats"`
	TotalLendingStats  TotalLendingStats  `json:"total_lending_stats"`
	TotalEarnStats     TotalEarnStats     `json:"total_earn_stats"`
	PeriodicStats      AllPeriodic        `json:"periodic_stats"`
}

// Periodic returns the series bundle for a period type.
func (d *Document) Periodic(periodType string) (*PeriodicStats, bool) {
	switch periodType {
	case "daily":
		return &d.PeriodicStats.Daily, true
	case "weekly":
		return &d.PeriodicStats.Weekly, true
	case "monthly":
		return &d.PeriodicStats.Monthly, true
	default:
		return nil, false
	}
}
