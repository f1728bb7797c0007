package gateway

import (
	"encoding/json"
	"fmt"
)

// Result is the settled outcome of a Call. Err is set for transport, encoding and decoding
// failures; in that case Body carries {"success": false, "error": <description>}.
type Result struct {
	Status int
	Body   map[string]any
	Raw    []byte
	Err    error
}

// Failure builds the failure value for err.
func Failure(err error) Result {
	return Result{
		Body: map[string]any{"success": false, "error": err.Error()},
		Err:  err,
	}
}

// Success reports the backend's own "success" flag. Failures are never successful.
func (r Result) Success() bool {
	if r.Err != nil {
		return false
	}
	ok, _ := r.Body["success"].(bool)
	return ok
}

// Object returns Body[key] when it is a JSON object.
func (r Result) Object(key string) map[string]any {
	v, _ := r.Body[key].(map[string]any)
	return v
}

// Decode unmarshals the raw response into v.
func (r Result) Decode(v any) error {
	if r.Err != nil {
		return r.Err
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}
	return nil
}
