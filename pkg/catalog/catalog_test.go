package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	descriptors := All()
	require.Len(t, descriptors, 20)

	// One-shot queries come first, in catalog order, with no period parameters
	wantTotals := []string{
		TotalUsers,
		TotalActivityStats,
		TotalSwapStats,
		TotalLendingStats,
		TotalEarnStats,
	}
	for i, want := range wantTotals {
		assert.Equal(t, want, descriptors[i].QueryType)
		assert.Empty(t, descriptors[i].PeriodType)
		assert.Zero(t, descriptors[i].Limit)
	}

	// Then daily, weekly, monthly blocks of the five periodic types
	wantJobs := []PeriodJob{
		{PeriodType: PeriodDaily, Limit: 30},
		{PeriodType: PeriodWeekly, Limit: 54},
		{PeriodType: PeriodMonthly, Limit: 24},
	}
	i := 5
	for _, job := range wantJobs {
		for _, queryType := range PeriodicQueryTypes() {
			assert.Equal(t, queryType, descriptors[i].QueryType)
			assert.Equal(t, job.PeriodType, descriptors[i].PeriodType)
			assert.Equal(t, job.Limit, descriptors[i].Limit)
			i++
		}
	}
}

func TestAllQueryTypesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, desc := range All() {
		key := desc.QueryType + "/" + desc.PeriodType
		assert.False(t, seen[key], "duplicate descriptor: %s", key)
		seen[key] = true
	}
}

func TestDescriptorJSON(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		want string
	}{
		{
			name: "one-shot query omits period parameters",
			desc: Descriptor{QueryType: TotalUsers},
			want: `{"queryType":"total_users"}`,
		},
		{
			name: "periodic query carries period type and limit",
			desc: Descriptor{QueryType: PeriodicSwapStats, PeriodType: PeriodWeekly, Limit: 54},
			want: `{"queryType":"periodic_swap_stats","period_type":"weekly","limit":54}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.desc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestPeriodJobLimits(t *testing.T) {
	jobs := PeriodJobs()
	require.Len(t, jobs, 3)
	assert.Equal(t, 30, jobs[0].Limit)
	assert.Equal(t, 54, jobs[1].Limit)
	assert.Equal(t, 24, jobs[2].Limit)
	for _, job := range jobs {
		assert.Positive(t, job.Limit)
	}
}
