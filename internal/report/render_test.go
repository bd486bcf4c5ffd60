// SPDX-License-Identifier: AGPL-3.0-or-later
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/loadwerk/loadcell/internal/results"
	"github.com/loadwerk/loadcell/internal/testutil/golden"
)

func TestMain(m *testing.M) {
	color.NoColor = true // rendered output must not depend on the test TTY
	os.Exit(m.Run())
}

func TestRenderText(t *testing.T) {
	sum := Summarize([]results.Record{
		rec("TestLogin", true),
		rec("TestCheckout", false),
		rec("TestLogin", true),
		rec("TestCheckout", true),
	})

	var buf bytes.Buffer
	RenderText(&buf, sum)
	golden.Assert(t, "testdata", "summary_fail", buf.String())
}

func TestRenderText_AllPassing(t *testing.T) {
	sum := Summarize([]results.Record{rec("TestBrowse", true), rec("TestBrowse", true)})

	var buf bytes.Buffer
	RenderText(&buf, sum)
	golden.Assert(t, "testdata", "summary_pass", buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	sum := Summarize([]results.Record{
		rec("TestLogin", true),
		rec("TestCheckout", false),
		rec("TestLogin", true),
		rec("TestCheckout", true),
	})

	golden.Assert(t, "testdata", "report_markdown", RenderMarkdown(sum))
}

func TestRenderRecord(t *testing.T) {
	var buf bytes.Buffer
	RenderRecord(&buf, rec("TestLogin", true))
	RenderRecord(&buf, rec("TestCheckout", false))

	want := "PASS  TestLogin\nFAIL  TestCheckout\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "reports", "load.md")

	if err := WriteFile(target, []byte("# Load Results\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "# Load Results\n" {
		t.Errorf("got %q", got)
	}

	if err := WriteFile(target, []byte("updated\n")); err != nil {
		t.Fatalf("WriteFile overwrite failed: %v", err)
	}
	got, err = os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "updated\n" {
		t.Errorf("after overwrite got %q, want %q", got, "updated\n")
	}
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, "out.md"), []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "report-tmp-") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}
