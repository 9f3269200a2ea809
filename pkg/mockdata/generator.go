package mockdata

import (
	"math/rand"
	"strings"
	"time"
)

// Chains and protocols the synthetic data draws from.
var (
	chains = []string{"Ethereum", "Polygon", "Arbitrum", "Solana", "Optimism", "Base"}

	earnProtocols = []string{"etherFi", "Lido", "MakerDAO", "Yearn"}

	markets = map[string][]string{
		"Polygon":  {"AaveV3Polygon", "CompoundPolygon"},
		"Ethereum": {"AaveV3Ethereum", "CompoundEthereum"},
		"Arbitrum": {"AaveV3Arbitrum", "CompoundArbitrum"},
		"Solana":   {"SolendSolana"},
		"Optimism": {"AaveV3Optimism"},
	}
)

// History depths matching the fetch catalog.
const (
	DefaultDays = 30
	weeksBack   = 54
	monthsBack  = 24
)

// Generator produces synthetic analytics documents. All randomness comes
// from the injected source, so a seeded Generator is deterministic.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		rng: rng,
		now: time.Now().UTC(),
	}
}

// Generate builds a complete document with the given days of daily
// history. All-time totals are derived from an internal daily window,
// mirroring how the real aggregates relate to the daily series.
func (g *Generator) Generate(days int) *Document {
	if days <= 0 {
		days = DefaultDays
	}

	dailyUsers := g.userSeries(days, g.dailyStart, 1)
	dailyActivity := g.activitySeries(days, g.dailyStart, 1, 20, 100)
	dailySwaps := g.swapSeries(days, g.dailyStart, 1)
	dailyLending := g.lendingSeriesDaily(days)

	totalUsers := 0
	for _, point := range dailyUsers {
		totalUsers += point.NewUsers
	}
	totalSwaps, totalLending := 0, 0
	for _, point := range dailySwaps {
		totalSwaps += point.TotalSwapCount
	}
	for _, point := range dailyLending {
		totalLending += point.TotalLendingCount
	}
	totalEarn, totalTransactions, totalEntrances := 0, 0, 0
	for _, point := range dailyActivity {
		totalEarn += point.EarnCount
		totalTransactions += point.TotalTransactions
		totalEntrances += point.DappEntrances
	}

	swapRoutes := make(map[string]int)
	for _, point := range dailySwaps {
		for route, count := range point.SwapRoutes {
			swapRoutes[route] += count
		}
	}
	crossChain, sameChain := splitRoutes(swapRoutes)

	return &Document{
		TotalUsers: TotalUsers{TotalUsers: totalUsers},
		TotalActivityStats: TotalActivityStats{
			TotalTransactions: totalTransactions,
			SwapCount:         totalSwaps,
			LendingCount:      totalLending,
			EarnCount:         totalEarn,
			DappEntrances:     totalEntrances,
			TotalUsers:        totalUsers,
		},
		TotalSwapStats: TotalSwapStats{
			TotalSwapCount:  totalSwaps,
			SwapRoutes:      swapRoutes,
			CrossChainCount: crossChain,
			SameChainCount:  sameChain,
		},
		TotalLendingStats: TotalLendingStats{
			TotalLendingCount: totalLending,
			Breakdown:         mergeBreakdowns(dailyLending),
		},
		TotalEarnStats: TotalEarnStats{
			TotalEarnCount:  totalEarn,
			ByChain:         g.countMap(g.sample(chains, 4), 10, 50),
			ByProtocol:      g.countMap(g.sample(earnProtocols, 3), 10, 50),
			ByChainProtocol: g.chainProtocolMap(2, 5, 20),
		},
		PeriodicStats: AllPeriodic{
			Daily:   g.DailyStats(days),
			Weekly:  g.WeeklyStats(weeksBack),
			Monthly: g.MonthlyStats(monthsBack),
		},
	}
}

// DailyStats generates the five daily series.
func (g *Generator) DailyStats(days int) PeriodicStats {
	return PeriodicStats{
		PeriodicUserStats:     g.userSeries(days, g.dailyStart, 1),
		PeriodicActivityStats: g.activitySeries(days, g.dailyStart, 1, 20, 100),
		PeriodicSwapStats:     g.swapSeries(days, g.dailyStart, 1),
		PeriodicLendingStats:  g.lendingSeriesDaily(days),
		PeriodicEarnStats:     g.earnSeriesDaily(days),
	}
}

// WeeklyStats generates the five weekly series, each period starting on a
// Monday and aggregating seven days of synthetic activity.
func (g *Generator) WeeklyStats(weeks int) PeriodicStats {
	return PeriodicStats{
		PeriodicUserStats:     g.userSeries(weeks, g.weeklyStart, 7),
		PeriodicActivityStats: g.activitySeries(weeks, g.weeklyStart, 7, 140, 700),
		PeriodicSwapStats:     g.swapSeries(weeks, g.weeklyStart, 7),
		PeriodicLendingStats:  g.lendingSeriesAggregated(weeks, g.weeklyStart, 7, 3),
		PeriodicEarnStats: g.earnSeriesAggregated(weeks, g.weeklyStart, 7, earnProfile{
			chainK: 3, protocolK: 2, pairChains: 1,
			minCount: 1, maxCount: 10, pairMin: 1, pairMax: 5,
		}),
	}
}

// MonthlyStats generates the five monthly series, each period starting on
// the first of the month and aggregating thirty days of synthetic activity.
func (g *Generator) MonthlyStats(months int) PeriodicStats {
	return PeriodicStats{
		PeriodicUserStats:     g.userSeries(months, g.monthlyStart, 30),
		PeriodicActivityStats: g.activitySeries(months, g.monthlyStart, 30, 600, 3000),
		PeriodicSwapStats:     g.swapSeries(months, g.monthlyStart, 30),
		PeriodicLendingStats:  g.lendingSeriesAggregated(months, g.monthlyStart, 30, 5),
		PeriodicEarnStats: g.earnSeriesAggregated(months, g.monthlyStart, 30, earnProfile{
			chainK: 4, protocolK: 3, pairChains: 2,
			minCount: 5, maxCount: 20, pairMin: 2, pairMax: 10,
		}),
	}
}

// ------------------------------------------------------------------
// period starts

func (g *Generator) dailyStart(i int) time.Time {
	return g.now.AddDate(0, 0, -i)
}

func (g *Generator) weeklyStart(i int) time.Time {
	daysSinceMonday := (int(g.now.Weekday()) + 6) % 7
	monday := g.now.AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, -7*i)
}

func (g *Generator) monthlyStart(i int) time.Time {
	first := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -i, 0)
}

// ------------------------------------------------------------------
// series generators

// userSeries produces per-period user counts, damped on weekends for the
// daily granularity (span 1).
func (g *Generator) userSeries(periods int, start func(int) time.Time, span int) []UserStatsPoint {
	series := make([]UserStatsPoint, 0, periods)
	for i := 0; i < periods; i++ {
		date := start(i)
		factor := 1.0
		if span == 1 {
			factor = weekendFactor(date, 0.6)
		}
		newUsers := damp(g.sumBetween(span, 2, 8), factor)
		activeUsers := damp(g.sumBetween(span, 5, 25), factor)
		if activeUsers < newUsers {
			activeUsers = newUsers
		}
		series = append(series, UserStatsPoint{
			PeriodStart: date.Format("2006-01-02"),
			NewUsers:    newUsers,
			ActiveUsers: activeUsers,
		})
	}
	return series
}

func (g *Generator) activitySeries(periods int, start func(int) time.Time, span, minEntrances, maxEntrances int) []ActivityStatsPoint {
	series := make([]ActivityStatsPoint, 0, periods)
	for i := 0; i < periods; i++ {
		date := start(i)
		factor := 1.0
		if span == 1 {
			factor = weekendFactor(date, 0.7)
		}
		swaps := damp(g.sumBetween(span, 5, 30), factor)
		lending := damp(g.sumBetween(span, 1, 10), factor)
		earn := damp(g.sumBetween(span, 2, 15), factor)
		total := swaps + lending + earn

		var active int
		if span == 1 {
			active = damp(g.intBetween(3, 15), factor)
		} else {
			active = g.sumBetween(span, 5, 25)
		}
		if active < 1 {
			active = 1
		}

		series = append(series, ActivityStatsPoint{
			PeriodStart:               date.Format("2006-01-02"),
			TotalTransactions:         total,
			SwapCount:                 swaps,
			LendingCount:              lending,
			EarnCount:                 earn,
			DappEntrances:             g.intBetween(minEntrances, maxEntrances),
			ActiveUsers:               active,
			TransactionsPerActiveUser: total / active,
		})
	}
	return series
}

func (g *Generator) swapSeries(periods int, start func(int) time.Time, span int) []SwapStatsPoint {
	series := make([]SwapStatsPoint, 0, periods)
	for i := 0; i < periods; i++ {
		date := start(i)
		factor := 1.0
		if span == 1 {
			factor = weekendFactor(date, 0.7)
		}
		total := damp(g.sumBetween(span, 5, 30), factor)
		routes := g.swapRoutes(total)
		crossChain, sameChain := splitRoutes(routes)

		series = append(series, SwapStatsPoint{
			PeriodStart:     date.Format("2006-01-02"),
			TotalSwapCount:  total,
			SwapRoutes:      routes,
			CrossChainCount: crossChain,
			SameChainCount:  sameChain,
		})
	}
	return series
}

// lendingSeriesDaily has quiet days: roughly half the days see no lending
// at all.
func (g *Generator) lendingSeriesDaily(days int) []LendingStatsPoint {
	series := make([]LendingStatsPoint, 0, days)
	for i := 0; i < days; i++ {
		date := g.dailyStart(i)

		total := 0
		breakdown := []LendingBreakdown{}
		if g.rng.Float64() > 0.5 {
			total = damp(g.intBetween(1, 10), weekendFactor(date, 0.7))
			if total < 1 {
				total = 1
			}
			breakdown = g.lendingBreakdown(total)
		}
		series = append(series, LendingStatsPoint{
			PeriodStart:       date.Format("2006-01-02"),
			TotalLendingCount: total,
			Breakdown:         breakdown,
		})
	}
	return series
}

func (g *Generator) lendingSeriesAggregated(periods int, start func(int) time.Time, span, maxBreakdown int) []LendingStatsPoint {
	series := make([]LendingStatsPoint, 0, periods)
	for i := 0; i < periods; i++ {
		total := g.sumBetween(span, 1, 10)
		breakdown := []LendingBreakdown{}
		if total > 0 {
			entries := maxBreakdown
			if total < entries {
				entries = total
			}
			breakdown = g.lendingBreakdown(entries)
		}
		series = append(series, LendingStatsPoint{
			PeriodStart:       start(i).Format("2006-01-02"),
			TotalLendingCount: total,
			Breakdown:         breakdown,
		})
	}
	return series
}

func (g *Generator) earnSeriesDaily(days int) []EarnStatsPoint {
	series := make([]EarnStatsPoint, 0, days)
	for i := 0; i < days; i++ {
		date := g.dailyStart(i)

		point := EarnStatsPoint{
			PeriodStart:     date.Format("2006-01-02"),
			ByChain:         map[string]int{},
			ByProtocol:      map[string]int{},
			ByChainProtocol: map[string]int{},
		}
		if g.rng.Float64() > 0.5 {
			total := damp(g.intBetween(2, 15), weekendFactor(date, 0.7))
			if total < 1 {
				total = 1
			}
			point.TotalEarnCount = total
			point.ByChain = g.countMap(g.sample(chains, 3), 1, 5)
			point.ByProtocol = g.countMap(g.sample(earnProtocols, 2), 1, 5)
			point.ByChainProtocol = g.chainProtocolMap(1, 1, 3)
		}
		series = append(series, point)
	}
	return series
}

// earnProfile controls how broad the per-period earn distributions are;
// wider periods spread activity over more chains and protocols.
type earnProfile struct {
	chainK     int
	protocolK  int
	pairChains int
	minCount   int
	maxCount   int
	pairMin    int
	pairMax    int
}

func (g *Generator) earnSeriesAggregated(periods int, start func(int) time.Time, span int, profile earnProfile) []EarnStatsPoint {
	series := make([]EarnStatsPoint, 0, periods)
	for i := 0; i < periods; i++ {
		total := g.sumBetween(span, 2, 15)

		point := EarnStatsPoint{
			PeriodStart:     start(i).Format("2006-01-02"),
			TotalEarnCount:  total,
			ByChain:         map[string]int{},
			ByProtocol:      map[string]int{},
			ByChainProtocol: map[string]int{},
		}
		if total > 0 {
			point.ByChain = g.countMap(g.sample(chains, profile.chainK), profile.minCount, profile.maxCount)
			point.ByProtocol = g.countMap(g.sample(earnProtocols, profile.protocolK), profile.minCount, profile.maxCount)
			point.ByChainProtocol = g.chainProtocolMap(profile.pairChains, profile.pairMin, profile.pairMax)
		}
		series = append(series, point)
	}
	return series
}

// ------------------------------------------------------------------
// helpers

// swapRoutes distributes count swaps over chain routes; roughly 30% are
// same-chain.
func (g *Generator) swapRoutes(count int) map[string]int {
	routes := make(map[string]int)
	for n := 0; n < count; n++ {
		var from, to string
		if g.rng.Float64() < 0.3 {
			from = chains[g.rng.Intn(len(chains))]
			to = from
		} else {
			pair := g.sample(chains, 2)
			from, to = pair[0], pair[1]
		}
		route := strings.ToLower(from) + "," + strings.ToLower(to)
		routes[route]++
	}
	return routes
}

func (g *Generator) lendingBreakdown(count int) []LendingBreakdown {
	lendingChains := make([]string, 0, len(markets))
	for _, chain := range chains {
		if _, ok := markets[chain]; ok {
			lendingChains = append(lendingChains, chain)
		}
	}

	breakdown := make([]LendingBreakdown, 0, count)
	for n := 0; n < count; n++ {
		chain := lendingChains[g.rng.Intn(len(lendingChains))]
		chainMarkets := markets[chain]
		breakdown = append(breakdown, LendingBreakdown{
			Chain:  chain,
			Market: chainMarkets[g.rng.Intn(len(chainMarkets))],
			Count:  g.intBetween(1, 5),
		})
	}
	return breakdown
}

// countMap assigns a random count in [min, max] to each key.
func (g *Generator) countMap(keys []string, min, max int) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key] = g.intBetween(min, max)
	}
	return counts
}

// chainProtocolMap builds "<chain>#<protocol>" keys for pairChains random
// chains, each paired with one random earn protocol.
func (g *Generator) chainProtocolMap(pairChains, min, max int) map[string]int {
	pairs := make(map[string]int, pairChains)
	for _, chain := range g.sample(chains, pairChains) {
		protocol := earnProtocols[g.rng.Intn(len(earnProtocols))]
		pairs[chain+"#"+protocol] = g.intBetween(min, max)
	}
	return pairs
}

// sample returns k distinct elements of s in random order.
func (g *Generator) sample(s []string, k int) []string {
	if k > len(s) {
		k = len(s)
	}
	picked := make([]string, len(s))
	copy(picked, s)
	g.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:k]
}

func (g *Generator) intBetween(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

// sumBetween sums n draws from [min, max], modelling a period of n days.
func (g *Generator) sumBetween(n, min, max int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += g.intBetween(min, max)
	}
	return total
}

// weekendFactor damps weekend days by the given factor.
func weekendFactor(date time.Time, factor float64) float64 {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return factor
	}
	return 1.0
}

// damp scales a count down by a factor, never below zero.
func damp(value int, factor float64) int {
	scaled := int(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	return scaled
}

// splitRoutes counts cross-chain and same-chain swaps in a route map.
func splitRoutes(routes map[string]int) (crossChain, sameChain int) {
	for route, count := range routes {
		parts := strings.SplitN(route, ",", 2)
		if len(parts) == 2 && parts[0] == parts[1] {
			sameChain += count
		} else {
			crossChain += count
		}
	}
	return crossChain, sameChain
}

// mergeBreakdowns aggregates per-period lending breakdowns by chain and
// market.
func mergeBreakdowns(series []LendingStatsPoint) []LendingBreakdown {
	type key struct{ chain, market string }
	totals := make(map[key]int)
	var order []key
	for _, point := range series {
		for _, entry := range point.Breakdown {
			k := key{entry.Chain, entry.Market}
			if _, seen := totals[k]; !seen {
				order = append(order, k)
			}
			totals[k] += entry.Count
		}
	}

	merged := make([]LendingBreakdown, 0, len(order))
	for _, k := range order {
		merged = append(merged, LendingBreakdown{
			Chain:  k.chain,
			Market: k.market,
			Count:  totals[k],
		})
	}
	return merged
}
