package render

import (
	"strings"
	"testing"

	"github.com/oddsmith/scoresim/pkg/sim"
)

var sample = []sim.Outcome{
	{GoalsA: 2, GoalsB: 1},
	{GoalsA: 1, GoalsB: 1},
	{GoalsA: 0, GoalsB: 2},
}

func TestMatchTableShape(t *testing.T) {
	table := MatchTable(sample)

	if !strings.Contains(table, "| Match | Goals A | Goals B | Spread | Total |") {
		t.Fatal("table is missing its header row")
	}

	// top rule, header, rule, one row per match, bottom rule
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if want := len(sample) + 4; len(lines) != want {
		t.Fatalf("table has %d lines, want %d", len(lines), want)
	}

	if !strings.Contains(table, "+1") {
		t.Fatal("positive spread is not rendered with a sign")
	}
	if !strings.Contains(table, "-2") {
		t.Fatal("negative spread is not rendered")
	}

	for _, line := range lines {
		if len(line) != len(lines[0]) {
			t.Fatalf("ragged table: line %q is not %d chars wide", line, len(lines[0]))
		}
	}
}

func TestSummaryTableValues(t *testing.T) {
	s, err := sim.Summarize(sample)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	table := SummaryTable(s)

	for _, want := range []string{
		"Simulations",
		"Team A wins",
		"Draws",
		"Team B wins",
		"Avg goals A",
		"Avg total goals",
		"33.3%", // one win, one draw, one loss out of three
	} {
		if !strings.Contains(table, want) {
			t.Fatalf("summary table missing %q:\n%s", want, table)
		}
	}
}

func TestReportCombinesBothTables(t *testing.T) {
	s, err := sim.Summarize(sample)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	report := Report(sample, s)
	if !strings.Contains(report, "| Match |") || !strings.Contains(report, "Simulations") {
		t.Fatal("report does not contain both the match table and the summary")
	}
}
