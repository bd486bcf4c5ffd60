// Package step defines the outcome value reported for a single executed
// unit of work in a load plan.
package step

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of one executed step. The value is fixed at
// construction and has no mutation path; Result is comparable, and two
// results are equal iff they carry the same outcome. Safe to share
// across concurrent readers without synchronization.
type Result struct {
	success bool
}

// NewResult returns the Result for a step whose outcome is known.
// Construction always succeeds; there are no invalid states.
func NewResult(success bool) Result {
	return Result{success: success}
}

// Success reports whether the step succeeded. It returns the value fixed
// at construction and has no side effects.
func (r Result) Success() bool { return r.success }

// String renders the outcome as "pass" or "fail".
func (r Result) String() string {
	if r.success {
		return "pass"
	}
	return "fail"
}

// resultWire is the JSON shape of a Result: a single required boolean.
type resultWire struct {
	IsSuccess *bool `json:"isSuccess"`
}

// MarshalJSON encodes the result as {"isSuccess":bool}.
func (r Result) MarshalJSON() ([]byte, error) {
	ok := r.success
	return json.Marshal(resultWire{IsSuccess: &ok})
}

// UnmarshalJSON decodes {"isSuccess":bool}. The field is required; a
// document without it is rejected rather than defaulting to failure.
func (r *Result) UnmarshalJSON(data []byte) error {
	var wire resultWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding step result: %w", err)
	}
	if wire.IsSuccess == nil {
		return fmt.Errorf("decoding step result: missing required field %q", "isSuccess")
	}
	r.success = *wire.IsSuccess
	return nil
}
