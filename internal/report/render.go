// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/loadwerk/loadcell/internal/results"
)

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// RenderRecord writes one journal record the way the watch command
// observes it.
func RenderRecord(w io.Writer, rec results.Record) {
	label := passLabel("PASS")
	if !rec.Result.Success() {
		label = failLabel("FAIL")
	}
	fmt.Fprintf(w, "%s  %s\n", label, rec.Method)
}

// RenderText writes the human-readable summary.
func RenderText(w io.Writer, sum Summary) {
	status := passLabel("PASS")
	if sum.Status != "pass" {
		status = failLabel("FAIL")
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Results: %d across %d methods\n", sum.Results, len(sum.Methods))

	for _, m := range sum.Methods {
		tally := sum.PerMethod[m]
		label := passLabel("pass")
		if tally.Fail > 0 {
			label = failLabel("fail")
		}
		fmt.Fprintf(w, "  %s  %s (%d pass, %d fail)\n", label, m, tally.Pass, tally.Fail)
	}

	if len(sum.Failed) > 0 {
		fmt.Fprintf(w, "Failed: %s\n", strings.Join(sum.Failed, ", "))
	}
}

// RenderMarkdown renders the summary as a deterministic markdown
// document. Rows follow the summary's first-seen method order.
func RenderMarkdown(sum Summary) string {
	var b strings.Builder

	b.WriteString("# Load Results\n\n")
	b.WriteString(fmt.Sprintf("- **Status**: %s\n", sum.Status))
	b.WriteString(fmt.Sprintf("- **Results**: %d\n", sum.Results))
	b.WriteString(fmt.Sprintf("- **Methods**: %d\n\n", len(sum.Methods)))

	rows := make([][]string, 0, len(sum.Methods))
	for _, m := range sum.Methods {
		tally := sum.PerMethod[m]
		rows = append(rows, []string{m, strconv.Itoa(tally.Pass), strconv.Itoa(tally.Fail)})
	}
	b.WriteString(renderTable([]string{"Method", "Pass", "Fail"}, rows))

	return b.String()
}

// renderTable renders a markdown table; rows must already be in display
// order.
func renderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}

// WriteFile writes content to path atomically by writing a temp file in
// the target directory and renaming it.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "report-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving report to %s: %w", path, err)
	}
	return nil
}
