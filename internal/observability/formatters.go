// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a scored match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.3f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Confidence: %.3f\n", result.Confidence))
	sb.WriteString("\n")
	sb.WriteString("Dimensions:\n")

	for _, ds := range result.DimensionList() {
		flag := ""
		if ds.InsufficientData {
			flag = " (insufficient data)"
		}
		sb.WriteString(fmt.Sprintf("  %-13s %.3f%s\n", ds.Dimension, ds.Score, flag))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanation outputs the narrative explanation of a match.
func (p *Printer) PrintExplanation(exp *types.Explanation) {
	if exp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:   %s\n", exp.Level))
	sb.WriteString(fmt.Sprintf("Overall: %.3f\n", exp.OverallScore))
	sb.WriteString("\n")

	if len(exp.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(exp.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := exp.Strengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", s.Dimension, s.Score))
		}
		if len(exp.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(exp.Strengths)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(exp.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		count := min(len(exp.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			g := exp.Gaps[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%.2f, impact %.3f)\n", g.Dimension, g.Score, g.Impact))
		}
		if len(exp.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(exp.Gaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(exp.ActionPlan) > 0 {
		sb.WriteString("Action Plan:\n")
		count := min(len(exp.ActionPlan), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := exp.ActionPlan[i]
			desc := a.Description
			if len(desc) > 42 {
				desc = desc[:39] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", a.Horizon, desc))
			sb.WriteString(fmt.Sprintf("    est. gain: +%.3f\n", a.EstimatedDelta))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
	}

	p.printBox("MATCH EXPLANATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the ranked job comparison with insights.
func (p *Printer) PrintComparison(cmp *types.RankedComparison) {
	if cmp == nil || len(cmp.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs compared: %d\n\n", len(cmp.Results)))

	count := min(len(cmp.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := cmp.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.JobID))
		sb.WriteString(fmt.Sprintf("    Score: %.3f  Confidence: %.3f\n", r.OverallScore, r.Confidence))
	}
	if len(cmp.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more jobs\n", len(cmp.Results)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Average score:  %.3f\n", cmp.Insights.AverageScore))
	sb.WriteString(fmt.Sprintf("Strong matches: %d\n", cmp.Insights.StrongMatches))
	if len(cmp.Insights.CommonStrengths) > 0 {
		sb.WriteString(fmt.Sprintf("Common strengths: %s\n", joinDimensions(cmp.Insights.CommonStrengths)))
	}
	if len(cmp.Insights.CommonGaps) > 0 {
		sb.WriteString(fmt.Sprintf("Common gaps:      %s\n", joinDimensions(cmp.Insights.CommonGaps)))
	}

	p.printBox("JOB COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovementPlan outputs the projected score improvements.
func (p *Printer) PrintImprovementPlan(plan *types.ImprovementPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current:   %.3f\n", plan.CurrentScore))
	sb.WriteString(fmt.Sprintf("Potential: %.3f\n", plan.PotentialScore))
	sb.WriteString(fmt.Sprintf("Timeline:  %s\n", plan.Timeline))

	if len(plan.Projections) > 0 {
		sb.WriteString("\n")
		sb.WriteString("Projections:\n")
		for _, proj := range plan.Projections {
			sb.WriteString(fmt.Sprintf("  %-13s %.2f → %.2f (+%.3f overall)\n",
				proj.Dimension, proj.CurrentScore, proj.TargetScore, proj.Delta))
		}
	}

	p.printBox("IMPROVEMENT PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

func joinDimensions(dims []types.Dimension) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
