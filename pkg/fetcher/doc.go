// Package fetcher drives the full analytics query catalog against the
// remote endpoint and assembles the aggregated report.
//
// # Overview
//
// A single Client carries the credential and content-type headers on one
// shared http.Client for the whole run. The Fetcher walks the catalog
// sequentially: the five all-time queries first, then the five periodic
// queries for each of daily, weekly and monthly. Every query produces a
// report.QueryResult; a failed call is recorded as an error sentinel and
// the run continues, so the report always carries all twenty entries.
//
// # Failure descriptions
//
// For a non-2xx response the description is built from, in priority order:
//
//  1. the structured error (or message) field of a JSON error body,
//  2. the raw response body text,
//  3. the HTTP status line alone.
//
// Transport failures use the transport error's own message. The status
// line is always included when one was received.
//
// # Usage
//
//	client := fetcher.NewClient(cfg.BaseURL, cfg.APIKey, cfg.RequestTimeout)
//	rep := fetcher.New(client, logger).Run(ctx)
//	err := rep.Write(cfg.OutputFile)
//
// # Related Packages
//
//   - pkg/catalog: the fixed query list
//   - pkg/report: result model and output writer
package fetcher
