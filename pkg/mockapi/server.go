// Package mockapi serves a stand-in analytics endpoint backed by
// synthetic data, so the fetcher can be exercised end to end without the
// production API.
package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/altverseweb3/analytics-fetcher/pkg/catalog"
	"github.com/altverseweb3/analytics-fetcher/pkg/mockdata"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server answers analytics queries from a fixed synthetic document.
type Server struct {
	apiKey string
	doc    *mockdata.Document
	log    *logrus.Logger
}

// NewServer creates a server enforcing the given API key.
func NewServer(apiKey string, doc *mockdata.Document, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		apiKey: apiKey,
		doc:    doc,
		log:    log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/analytics", s.handleAnalytics).Methods(http.MethodPost)
	return r
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("x-api-key") != s.apiKey {
		writeError(w, http.StatusUnauthorized, "invalid or missing API key")
		return
	}

	var desc catalog.Descriptor
	if err := json.NewDecoder(r.Body).Decode(&desc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	s.log.WithFields(logrus.Fields{
		"query":       desc.QueryType,
		"period_type": desc.PeriodType,
		"limit":       desc.Limit,
	}).Debug("Serving analytics query")

	switch desc.QueryType {
	case catalog.TotalUsers:
		writeJSON(w, http.StatusOK, s.doc.TotalUsers)
	case catalog.TotalActivityStats:
		writeJSON(w, http.StatusOK, s.doc.TotalActivityStats)
	case catalog.TotalSwapStats:
		writeJSON(w, http.StatusOK, s.doc.TotalSwapStats)
	case catalog.TotalLendingStats:
		writeJSON(w, http.StatusOK, s.doc.TotalLendingStats)
	case catalog.TotalEarnStats:
		writeJSON(w, http.StatusOK, s.doc.TotalEarnStats)
	case catalog.PeriodicUserStats, catalog.PeriodicActivityStats,
		catalog.PeriodicSwapStats, catalog.PeriodicLendingStats,
		catalog.PeriodicEarnStats:
		s.servePeriodic(w, desc)
	default:
		writeError(w, http.StatusBadRequest, "unknown queryType: "+desc.QueryType)
	}
}

func (s *Server) servePeriodic(w http.ResponseWriter, desc catalog.Descriptor) {
	stats, ok := s.doc.Periodic(desc.PeriodType)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown period_type: "+desc.PeriodType)
		return
	}

	switch desc.QueryType {
	case catalog.PeriodicUserStats:
		writeJSON(w, http.StatusOK, truncate(stats.PeriodicUserStats, desc.Limit))
	case catalog.PeriodicActivityStats:
		writeJSON(w, http.StatusOK, truncate(stats.PeriodicActivityStats, desc.Limit))
	case catalog.PeriodicSwapStats:
		writeJSON(w, http.StatusOK, truncate(stats.PeriodicSwapStats, desc.Limit))
	case catalog.PeriodicLendingStats:
		writeJSON(w, http.StatusOK, truncate(stats.PeriodicLendingStats, desc.Limit))
	case catalog.PeriodicEarnStats:
		writeJSON(w, http.StatusOK, truncate(stats.PeriodicEarnStats, desc.Limit))
	}
}

// truncate bounds a series to the requested history depth. A zero limit
// returns the full series.
func truncate[T any](series []T, limit int) []T {
	if limit > 0 && limit < len(series) {
		return series[:limit]
	}
	return series
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
