// Package explain renders a classification result into a fixed-section,
// human-readable explanation for expert review. Sections always appear, in
// the same order, even when empty.
package explain

import (
	"fmt"
	"strings"

	"github.com/pdevries/ontoclass/internal/model"
)

// Builder renders explanations.
type Builder struct{}

// NewBuilder creates an explanation builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the explanation for a result. knownLegalTerm reports whether
// the term appears in the legal lexicon.
func (b *Builder) Build(r *model.ClassificationResult, knownLegalTerm bool) string {
	var sb strings.Builder

	section(&sb, "Primary Classification")
	fmt.Fprintf(&sb, "%s -> %s\n", r.Term, r.PrimaryCategory)
	if len(r.SecondaryCategories) > 0 {
		alts := make([]string, len(r.SecondaryCategories))
		for i, c := range r.SecondaryCategories {
			alts[i] = string(c)
		}
		fmt.Fprintf(&sb, "Alternative readings: %s\n", strings.Join(alts, ", "))
	}

	section(&sb, "Confidence")
	fmt.Fprintf(&sb, "%.2f", r.Confidence)
	if r.ManualOverrideRequired {
		sb.WriteString(" (below review threshold, manual review required)")
	} else {
		sb.WriteString(" (manual review not required)")
	}
	sb.WriteString("\n")

	section(&sb, "Decision Path")
	for i, step := range r.DecisionPath {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}

	section(&sb, "Matched Patterns")
	if len(r.MatchedPatterns) == 0 {
		sb.WriteString("No patterns matched.\n")
	} else {
		for _, cat := range model.AllCategories() {
			evidence, ok := r.MatchedPatterns[cat]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "%s:\n", cat)
			for _, ev := range evidence {
				fmt.Fprintf(&sb, "  - %s\n", ev)
			}
		}
	}

	section(&sb, "Score Overview")
	for _, cat := range model.AllCategories() {
		fmt.Fprintf(&sb, "%-16s %.2f\n", cat, r.AllScores[cat])
	}

	section(&sb, "Legal Domain Considerations")
	if r.Context != "" {
		fmt.Fprintf(&sb, "Active legal domain: %s\n", r.Context)
	} else {
		sb.WriteString("No active legal domain.\n")
	}
	if knownLegalTerm {
		fmt.Fprintf(&sb, "%q is a known Dutch legal term.\n", r.Term)
	} else {
		fmt.Fprintf(&sb, "%q does not appear in the legal lexicon.\n", r.Term)
	}
	for _, note := range r.DisambiguationNotes {
		fmt.Fprintf(&sb, "Note: %s\n", note)
	}

	section(&sb, "Elapsed Time")
	fmt.Fprintf(&sb, "%v\n", r.Elapsed)

	return sb.String()
}

func section(sb *strings.Builder, title string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "=== %s ===\n", title)
}
