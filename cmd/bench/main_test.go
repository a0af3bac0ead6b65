package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	results := []BenchResult{
		{Format: "docx", Duration: time.Second, Size: 100},
		{Format: "docx", Duration: 3 * time.Second, Size: 300},
		{Format: "csv", Err: errors.New("No tables found in PDF")},
	}

	agg := aggregate(results)
	if a := agg["docx"]; a.Count != 2 || a.Total != 4*time.Second || a.TotalBytes != 400 {
		t.Fatalf("docx = %+v", a)
	}
	if a := agg["csv"]; a.Count != 0 || a.Failed != 1 {
		t.Fatalf("csv = %+v", a)
	}
}

func TestPrintMarkdown(t *testing.T) {
	var buf bytes.Buffer
	printMarkdown(&buf, []BenchResult{
		{Format: "docx", Duration: 2 * time.Second, Size: 2048},
		{Format: "csv", Err: errors.New("boom")},
	})

	out := buf.String()
	for _, want := range []string{
		"| csv | 0 | 1 | - | - | - |",
		"| docx | 1 | 0 | 2s | 2s | 2.00 KB |",
		"| **ALL** | 1 | 1 | 2s | 2s | 2.00 KB |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHumanBytes(t *testing.T) {
	tests := map[int64]string{
		512:     "512 B",
		1536:    "1.50 KB",
		5 << 20: "5.00 MB",
	}
	for in, want := range tests {
		if got := humanBytes(in); got != want {
			t.Errorf("humanBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
