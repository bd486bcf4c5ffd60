// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report rolls recorded step outcomes up into a summary and
// renders it for terminals, JSON consumers, and markdown files.
package report

import (
	"github.com/loadwerk/loadcell/internal/results"
)

// Tally counts outcome occurrences for one method.
type Tally struct {
	Pass int `json:"pass"`
	Fail int `json:"fail"`
}

// Summary is the rollup of a results journal. It only counts recorded
// outcomes; it carries no timing or rate semantics.
type Summary struct {
	Status    string           `json:"status"` // "pass" or "fail"
	Results   int              `json:"results"`
	Methods   []string         `json:"methods"` // first-seen order
	Failed    []string         `json:"failed,omitempty"`
	PerMethod map[string]Tally `json:"per_method"`
}

// Summarize rolls up records in journal order. Status is "fail" iff any
// record failed.
func Summarize(records []results.Record) Summary {
	sum := Summary{
		Status:    "pass",
		Results:   len(records),
		PerMethod: make(map[string]Tally),
	}

	failedSeen := make(map[string]bool)
	for _, rec := range records {
		tally, seen := sum.PerMethod[rec.Method]
		if !seen {
			sum.Methods = append(sum.Methods, rec.Method)
		}

		if rec.Result.Success() {
			tally.Pass++
		} else {
			tally.Fail++
			sum.Status = "fail"
			if !failedSeen[rec.Method] {
				failedSeen[rec.Method] = true
				sum.Failed = append(sum.Failed, rec.Method)
			}
		}
		sum.PerMethod[rec.Method] = tally
	}
	return sum
}
