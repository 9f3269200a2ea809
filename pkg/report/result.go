// Package report holds the aggregated output of one analytics batch run:
// the per-query result model, the report document whose shape fixes the
// serialized key order, and the atomic file writer.
package report

import "encoding/json"

// QueryResult is the outcome of a single analytics query: either the
// endpoint's JSON payload recorded verbatim, or a recovered failure that
// marshals to the {"error": "<description>"} sentinel shape.
type QueryResult struct {
	payload json.RawMessage
	errMsg  string
}

// Success wraps a payload returned by the endpoint.
func Success(payload json.RawMessage) QueryResult {
	return QueryResult{payload: payload}
}

// Failure records a recovered per-query failure with a human-readable
// description.
func Failure(description string) QueryResult {
	return QueryResult{errMsg: description}
}

// IsError reports whether the result is a failure sentinel.
func (r QueryResult) IsError() bool {
	return r.errMsg != ""
}

// ErrorMessage returns the failure description, empty for a success.
func (r QueryResult) ErrorMessage() string {
	return r.errMsg
}

// Payload returns the raw success payload, nil for a failure.
func (r QueryResult) Payload() json.RawMessage {
	return r.payload
}

// MarshalJSON emits the success payload verbatim, or the failure sentinel.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	if r.errMsg != "" {
		return json.Marshal(map[string]string{"error": r.errMsg})
	}
	if len(r.payload) == 0 {
		return []byte("null"), nil
	}
	return r.payload, nil
}

// UnmarshalJSON classifies incoming data: a top-level object containing
// exactly an "error" string key is the failure sentinel, anything else is
// a success payload.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	var sentinel map[string]string
	if err := json.Unmarshal(data, &sentinel); err == nil && len(sentinel) == 1 {
		if msg, ok := sentinel["error"]; ok {
			*r = Failure(msg)
			return nil
		}
	}
	r.errMsg = ""
	r.payload = append(json.RawMessage(nil), data...)
	return nil
}
