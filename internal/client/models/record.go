package models

import (
	"encoding/json"
	"fmt"
)

// DuplicateMessage is the message the service returns when the submitted
// content already exists.
const DuplicateMessage = "Duplicate file detected"

// Record is a decoded JSON object whose shape depends on the endpoint and
// outcome. Numbers are kept as json.Number.
type Record map[string]any

// Without returns a copy of r with the given top-level keys removed.
// r itself is left untouched.
func (r Record) Without(keys ...string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Text returns the value under key formatted as a string. Objects and
// arrays are not text; neither is null or a missing key.
func (r Record) Text(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	switch value := v.(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool, float64:
		return fmt.Sprint(value), true
	default:
		return "", false
	}
}

// Reply is a JSON response together with its status.
type Reply struct {
	StatusCode int
	Raw        json.RawMessage
	Record     Record
}

// OK reports a 2xx status.
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
