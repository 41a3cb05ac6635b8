package vine

import "encoding/json"

// Record is an open JSON object returned by the API. Response shapes vary
// per endpoint, so fields are looked up by name rather than decoded into
// typed structs.
type Record map[string]any

// Get walks the given key path and returns the value at the end of it,
// or nil if any step is missing or not an object.
func (m Record) Get(path ...string) any {
	var cur any = map[string]any(m)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// String returns the string at the given key path, or "" if absent or
// not a string.
func (m Record) String(path ...string) string {
	s, _ := m.Get(path...).(string)
	return s
}

// Int returns the number at the given key path truncated to an int64,
// or 0 if absent or not a number.
func (m Record) Int(path ...string) int64 {
	f, _ := m.Get(path...).(float64)
	return int64(f)
}

// Records returns the array of objects at the given key path, or nil if
// absent or not an array. Non-object elements are skipped.
func (m Record) Records(path ...string) []Record {
	arr, ok := m.Get(path...).([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(arr))
	for _, e := range arr {
		if obj, ok := e.(map[string]any); ok {
			records = append(records, Record(obj))
		}
	}
	return records
}

// Result is the uniform envelope returned by every read method. Exactly
// one of Record or Records is populated: Record for object-shaped bodies
// and all failures, Records for array-shaped bodies.
type Result struct {
	Record  Record
	Records []Record
}

// IsList reports whether the response body was an array.
func (r Result) IsList() bool {
	return r.Records != nil
}

// Success reports whether the call succeeded. It is false only for the
// normalized failure envelope and for bodies whose success field is
// explicitly false; list responses and bodies without a success field
// count as successful.
func (r Result) Success() bool {
	if r.Records != nil {
		return true
	}
	if r.Record == nil {
		return false
	}
	if v, ok := r.Record["success"].(bool); ok {
		return v
	}
	return true
}

// IsError reports whether the result carries the failure marker.
func (r Result) IsError() bool {
	v, _ := r.Record["error"].(bool)
	return v
}

// Message returns the failure message, if the API included one.
func (r Result) Message() string {
	return r.Record.String("message")
}

// classify normalizes a raw response body into a Result.
//
// Unparseable or non-structured bodies become the failure envelope.
// Object bodies whose success field is explicitly false get error=true
// forced in, preserving the remaining fields. Everything else is
// returned as-is.
func classify(body []byte) Result {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return failureResult()
	}
	switch t := v.(type) {
	case map[string]any:
		rec := Record(t)
		if s, ok := rec["success"].(bool); ok && !s {
			rec["error"] = true
		}
		return Result{Record: rec}
	case []any:
		records := make([]Record, 0, len(t))
		for _, e := range t {
			if obj, ok := e.(map[string]any); ok {
				records = append(records, Record(obj))
			}
		}
		return Result{Records: records}
	default:
		return failureResult()
	}
}

// failureResult is the envelope returned for timeouts and malformed
// bodies, indistinguishable from an API-reported failure.
func failureResult() Result {
	return Result{Record: Record{"success": false, "error": true}}
}
