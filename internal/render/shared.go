package render

import (
	"fmt"
	"strings"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/events"
)

// BudgetLine is one row of the resource-allocation table some styles carry.
type BudgetLine struct {
	Bucket string `json:"bucket"`
	Share  int    `json:"share_pct"`
}

// budgetSplits are the fixed cost-split ratios keyed to urgency tier.
// Stabilize / deliver / grow must sum to 100 per tier.
var budgetSplits = map[classify.Urgency][3]int{
	classify.UrgencyCrisis: {70, 20, 10},
	classify.UrgencyHigh:   {50, 35, 15},
	classify.UrgencyMedium: {30, 50, 20},
	classify.UrgencyLow:    {20, 50, 30},
}

// budgetTable synthesizes the allocation table for an urgency tier.
func budgetTable(u classify.Urgency) []BudgetLine {
	split, ok := budgetSplits[u]
	if !ok {
		split = budgetSplits[classify.UrgencyLow]
	}
	return []BudgetLine{
		{Bucket: "stabilize", Share: split[0]},
		{Bucket: "deliver", Share: split[1]},
		{Bucket: "grow", Share: split[2]},
	}
}

// kudos picks the stakeholders worth thanking: everyone the classifier
// surfaced, minus placeholder owners.
func kudos(ctx classify.Context) []string {
	var out []string
	for _, name := range ctx.Stakeholders {
		if name == "TBD" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// scheduleLine produces one timeboxed line per upcoming event.
func scheduleLine(ev events.Upcoming) string {
	when := ev.Start.Format("Mon 15:04")
	switch {
	case ev.Soon:
		when += " (imminent)"
	case ev.Today:
		when += " (today)"
	}
	return fmt.Sprintf("%s | %s [%s]", when, ev.Title, ev.Type)
}

// joinOr returns the joined list, or the fallback when the list is empty.
func joinOr(items []string, sep, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, sep)
}
