package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/altverseweb3/analytics-fetcher/pkg/catalog"
	"github.com/altverseweb3/analytics-fetcher/pkg/fetcher"
	"github.com/altverseweb3/analytics-fetcher/pkg/mockdata"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testServer(t *testing.T) (*httptest.Server, *mockdata.Document) {
	t.Helper()
	doc := mockdata.NewGenerator(rand.New(rand.NewSource(1))).Generate(30)
	server := httptest.NewServer(NewServer("test-key", doc, quietLogger()).Router())
	t.Cleanup(server.Close)
	return server, doc
}

func post(t *testing.T, url, apiKey string, desc catalog.Descriptor) *http.Response {
	t.Helper()
	body, err := json.Marshal(desc)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url+"/analytics", bytes.NewReader(body))
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestTotalQuery(t *testing.T) {
	server, doc := testServer(t)

	resp := post(t, server.URL, "test-key", catalog.Descriptor{QueryType: catalog.TotalUsers})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload mockdata.TotalUsers
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, doc.TotalUsers, payload)
}

func TestMissingAPIKey(t *testing.T) {
	server, _ := testServer(t)

	resp := post(t, server.URL, "", catalog.Descriptor{QueryType: catalog.TotalUsers})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var sentinel map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sentinel))
	assert.Contains(t, sentinel["error"], "API key")
}

func TestWrongAPIKey(t *testing.T) {
	server, _ := testServer(t)
	resp := post(t, server.URL, "other-key", catalog.Descriptor{QueryType: catalog.TotalUsers})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownQueryType(t *testing.T) {
	server, _ := testServer(t)

	resp := post(t, server.URL, "test-key", catalog.Descriptor{QueryType: "no_such_stats"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var sentinel map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sentinel))
	assert.Contains(t, sentinel["error"], "no_such_stats")
}

func TestUnknownPeriodType(t *testing.T) {
	server, _ := testServer(t)
	resp := post(t, server.URL, "test-key", catalog.Descriptor{
		QueryType:  catalog.PeriodicUserStats,
		PeriodType: "hourly",
		Limit:      5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPeriodicLimitTruncation(t *testing.T) {
	server, _ := testServer(t)

	resp := post(t, server.URL, "test-key", catalog.Descriptor{
		QueryType:  catalog.PeriodicUserStats,
		PeriodType: catalog.PeriodDaily,
		Limit:      5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var series []mockdata.UserStatsPoint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&series))
	assert.Len(t, series, 5)
}

func TestMethodNotAllowed(t *testing.T) {
	server, _ := testServer(t)
	resp, err := http.Get(server.URL + "/analytics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// The full fetch pipeline against the mock endpoint: every catalog query
// succeeds and the report carries the generated data untouched.
func TestFetcherEndToEnd(t *testing.T) {
	server, doc := testServer(t)

	client := fetcher.NewClient(server.URL, "test-key", 5*time.Second)
	rep := fetcher.New(client, quietLogger()).Run(context.Background())

	require.False(t, rep.TotalUsers.IsError())
	var totalUsers mockdata.TotalUsers
	require.NoError(t, json.Unmarshal(rep.TotalUsers.Payload(), &totalUsers))
	assert.Equal(t, doc.TotalUsers, totalUsers)

	require.False(t, rep.PeriodicStats.Weekly.PeriodicEarnStats.IsError())
	var weeklyEarn []mockdata.EarnStatsPoint
	require.NoError(t, json.Unmarshal(rep.PeriodicStats.Weekly.PeriodicEarnStats.Payload(), &weeklyEarn))
	assert.Len(t, weeklyEarn, 54)

	require.False(t, rep.PeriodicStats.Monthly.PeriodicLendingStats.IsError())
	var monthlyLending []mockdata.LendingStatsPoint
	require.NoError(t, json.Unmarshal(rep.PeriodicStats.Monthly.PeriodicLendingStats.Payload(), &monthlyLending))
	assert.Len(t, monthlyLending, 24)
}

func TestFetcherEndToEndWrongKey(t *testing.T) {
	server, _ := testServer(t)

	client := fetcher.NewClient(server.URL, "wrong-key", 5*time.Second)
	rep := fetcher.New(client, quietLogger()).Run(context.Background())

	require.True(t, rep.TotalUsers.IsError())
	assert.Contains(t, rep.TotalUsers.ErrorMessage(), "401")
	assert.Contains(t, rep.TotalUsers.ErrorMessage(), "API key")
}
