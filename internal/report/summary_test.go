// SPDX-License-Identifier: AGPL-3.0-or-later
package report

import (
	"testing"

	"github.com/loadwerk/loadcell/internal/results"
	"github.com/loadwerk/loadcell/pkg/step"
)

func rec(method string, pass bool) results.Record {
	return results.Record{Method: method, Result: step.NewResult(pass)}
}

func TestSummarize(t *testing.T) {
	sum := Summarize([]results.Record{
		rec("TestLogin", true),
		rec("TestCheckout", false),
		rec("TestLogin", true),
		rec("TestCheckout", true),
	})

	if sum.Status != "fail" {
		t.Errorf("got status %q, want fail", sum.Status)
	}
	if sum.Results != 4 {
		t.Errorf("got %d results, want 4", sum.Results)
	}
	if len(sum.Methods) != 2 || sum.Methods[0] != "TestLogin" || sum.Methods[1] != "TestCheckout" {
		t.Errorf("got methods %v, want [TestLogin TestCheckout]", sum.Methods)
	}
	if got := sum.PerMethod["TestLogin"]; got.Pass != 2 || got.Fail != 0 {
		t.Errorf("TestLogin tally = %+v, want 2 pass / 0 fail", got)
	}
	if got := sum.PerMethod["TestCheckout"]; got.Pass != 1 || got.Fail != 1 {
		t.Errorf("TestCheckout tally = %+v, want 1 pass / 1 fail", got)
	}
	if len(sum.Failed) != 1 || sum.Failed[0] != "TestCheckout" {
		t.Errorf("got failed %v, want [TestCheckout]", sum.Failed)
	}
}

func TestSummarize_AllPassing(t *testing.T) {
	sum := Summarize([]results.Record{rec("TestBrowse", true), rec("TestBrowse", true)})

	if sum.Status != "pass" {
		t.Errorf("got status %q, want pass", sum.Status)
	}
	if len(sum.Failed) != 0 {
		t.Errorf("got failed %v, want none", sum.Failed)
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)

	if sum.Status != "pass" {
		t.Errorf("got status %q, want pass", sum.Status)
	}
	if sum.Results != 0 {
		t.Errorf("got %d results, want 0", sum.Results)
	}
	if len(sum.Methods) != 0 {
		t.Errorf("got methods %v, want none", sum.Methods)
	}
}

func TestSummarize_FailedListsMethodOnce(t *testing.T) {
	sum := Summarize([]results.Record{
		rec("TestSearch", false),
		rec("TestSearch", false),
	})

	if len(sum.Failed) != 1 || sum.Failed[0] != "TestSearch" {
		t.Errorf("got failed %v, want [TestSearch]", sum.Failed)
	}
	if got := sum.PerMethod["TestSearch"]; got.Fail != 2 {
		t.Errorf("got %d fails, want 2", got.Fail)
	}
}
