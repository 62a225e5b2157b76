package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCICommitListWriter_Write(t *testing.T) {
	report := testReport()

	data := writeToTemp(t, &CICommitListWriter{}, report, 0)

	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) != 4 { // 1 summary + 3 commits
		t.Fatalf("expected 4 lines, got %d: %s", len(lines), data)
	}

	var summary CISummary
	if err := json.Unmarshal([]byte(lines[0]), &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if summary.Type != "summary" {
		t.Errorf("summary.Type = %q, want %q", summary.Type, "summary")
	}
	if summary.TotalCommits != 3 {
		t.Errorf("summary.TotalCommits = %d, want 3", summary.TotalCommits)
	}
	if summary.WithPR != 2 {
		t.Errorf("summary.WithPR = %d, want 2", summary.WithPR)
	}
	if summary.Oldest != "2026-10-01T10:00:00Z" || summary.Newest != "2026-10-03T10:00:00Z" {
		t.Errorf("summary Oldest/Newest = %s/%s", summary.Oldest, summary.Newest)
	}

	var first, last CICommitEntry
	if err := json.Unmarshal([]byte(lines[1]), &first); err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[3]), &last); err != nil {
		t.Fatalf("Failed to parse entry: %v", err)
	}
	if first.Type != "commit" || first.SHA != report.Commits[0].SHA {
		t.Errorf("first entry = %+v", first)
	}
	if first.PR != nil {
		t.Errorf("first.PR = %d, want omitted", *first.PR)
	}
	if last.PR == nil || *last.PR != 1002 {
		t.Errorf("last.PR = %v, want 1002", last.PR)
	}
	if strings.Contains(lines[1], `"pr"`) {
		t.Errorf("entry without PR should omit the field: %s", lines[1])
	}
}

func TestCICommitListWriter_TopLimit(t *testing.T) {
	data := writeToTemp(t, &CICommitListWriter{}, testReport(), 1)

	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) != 2 { // 1 summary + 1 commit
		t.Fatalf("expected 2 lines with Top=1, got %d", len(lines))
	}

	var summary CISummary
	if err := json.Unmarshal([]byte(lines[0]), &summary); err != nil {
		t.Fatalf("Failed to parse summary: %v", err)
	}
	if summary.TotalCommits != 3 {
		t.Errorf("summary counts the full list, got %d", summary.TotalCommits)
	}
}

func TestCICommitListWriter_Empty(t *testing.T) {
	report := testReport()
	report.Commits = nil

	data := writeToTemp(t, &CICommitListWriter{}, report, 0)

	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the summary line, got %d", len(lines))
	}
	if strings.Contains(lines[0], "oldest") {
		t.Errorf("empty summary should omit oldest: %s", lines[0])
	}
}
