// Package results persists step outcomes handed off by external runners
// and replays them for reporting.
package results

import (
	"encoding/json"
	"errors"

	"github.com/loadwerk/loadcell/pkg/step"
)

// Record couples one recorded outcome with the method that produced it.
// A record is one line of the journal; its nested result object is the
// step wire shape.
type Record struct {
	Method string
	Result step.Result
}

// recordWire is the journal line shape. Result stays raw so the step
// codec enforces its own required field.
type recordWire struct {
	Method string          `json:"method"`
	Result json.RawMessage `json:"result"`
}

// MarshalJSON encodes the record as {"method":...,"result":{"isSuccess":...}}.
func (r Record) MarshalJSON() ([]byte, error) {
	res, err := json.Marshal(r.Result)
	if err != nil {
		return nil, err
	}
	return json.Marshal(recordWire{Method: r.Method, Result: res})
}

// UnmarshalJSON decodes a journal line. Both fields are required.
func (r *Record) UnmarshalJSON(data []byte) error {
	var wire recordWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Method == "" {
		return errors.New("record missing method")
	}
	if len(wire.Result) == 0 {
		return errors.New("record missing result")
	}

	var res step.Result
	if err := json.Unmarshal(wire.Result, &res); err != nil {
		return err
	}
	r.Method = wire.Method
	r.Result = res
	return nil
}
