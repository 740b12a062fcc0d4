package render

import (
	"fmt"
	"strings"

	"github.com/oddsmith/scoresim/pkg/sim"
)

// Text rendering of simulation results. Percentages are shown to one
// decimal place and averages to two; the core leaves both unrounded.

const matchRule = "+-------+---------+---------+--------+-------+"

// MatchTable renders one bordered row per simulated match.
func MatchTable(outcomes []sim.Outcome) string {
	var b strings.Builder

	b.WriteString(matchRule + "\n")
	b.WriteString("| Match | Goals A | Goals B | Spread | Total |\n")
	b.WriteString(matchRule + "\n")

	for i, o := range outcomes {
		fmt.Fprintf(&b, "| %5d | %7d | %7d | %+6d | %5d |\n",
			i+1, o.GoalsA, o.GoalsB, o.Spread(), o.Total())
	}

	b.WriteString(matchRule + "\n")
	return b.String()
}

const summaryRule = "+--------------------+-----------------+"

// SummaryTable renders the aggregate statistics as a bordered block.
func SummaryTable(s *sim.Summary) string {
	var b strings.Builder

	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "| %-18s | %15d |\n", "Simulations", s.Total)
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "| %-18s | %6d (%5.1f%%) |\n", "Team A wins", s.WinsA, s.PctWinsA)
	fmt.Fprintf(&b, "| %-18s | %6d (%5.1f%%) |\n", "Draws", s.Draws, s.PctDraws)
	fmt.Fprintf(&b, "| %-18s | %6d (%5.1f%%) |\n", "Team B wins", s.WinsB, s.PctWinsB)
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "| %-18s | %15.2f |\n", "Avg goals A", s.AvgGoalsA)
	fmt.Fprintf(&b, "| %-18s | %15.2f |\n", "Avg goals B", s.AvgGoalsB)
	fmt.Fprintf(&b, "| %-18s | %15.2f |\n", "Avg spread", s.AvgSpread)
	fmt.Fprintf(&b, "| %-18s | %15.2f |\n", "Avg total goals", s.AvgTotal)
	b.WriteString(summaryRule + "\n")

	return b.String()
}

// Report renders the full result text: per-match table then summary.
func Report(outcomes []sim.Outcome, s *sim.Summary) string {
	return MatchTable(outcomes) + "\n" + SummaryTable(s)
}
