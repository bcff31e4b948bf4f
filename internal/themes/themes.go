// Package themes detects up to three thematic labels for a dataset.
//
// Detection is a fixed cascade of independent test groups. Each group
// contributes at most one theme (first matching branch wins), groups are
// evaluated in a fixed order, and the final list is truncated to three.
// A dataset that matches nothing gets the default theme so a brief always
// has at least one.
package themes

import (
	"fmt"
	"time"

	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/vocab"
)

// Theme is a short label summarizing a dominant pattern in the dataset.
type Theme struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// maxThemes caps the detected theme list.
const maxThemes = 3

// Detect runs the theme cascade for a dataset as of now.
// Always returns between 1 and 3 themes.
func Detect(d *signal.UnifiedDataset, now time.Time) []Theme {
	var out []Theme

	// Group 1: incidents.
	active, recent := 0, 0
	for _, inc := range d.Incidents {
		if inc.Active() {
			active++
		} else if inc.StartedAt.After(now.Add(-24 * time.Hour)) {
			recent++
		}
	}
	if active > 0 {
		out = append(out, Theme{
			Title:       "Crisis Response",
			Description: fmt.Sprintf("%d active incident(s) need immediate attention", active),
		})
	} else if recent > 0 {
		out = append(out, Theme{
			Title:       "Recovery & Learning",
			Description: "Recent incidents resolved; capture learnings while fresh",
		})
	}

	// Group 2: ticket health.
	critical, overdue := 0, 0
	for _, t := range d.Tickets {
		if t.Critical() {
			critical++
		}
		if t.Overdue(now) {
			overdue++
		}
	}
	if critical >= 3 {
		out = append(out, Theme{
			Title:       "Risk Mitigation",
			Description: fmt.Sprintf("%d open critical tickets concentrate delivery risk", critical),
		})
	} else if overdue > 0 {
		out = append(out, Theme{
			Title:       "Execution Focus",
			Description: fmt.Sprintf("%d ticket(s) past due date", overdue),
		})
	}

	// Group 3: customer signals in the inbox.
	churn := countMatching(d.Emails, vocab.Churn)
	if churn >= 2 {
		out = append(out, Theme{
			Title:       "Customer Retention",
			Description: fmt.Sprintf("%d message(s) show churn or escalation language", churn),
		})
	} else if support := countMatching(d.Emails, vocab.Support); support >= 5 {
		out = append(out, Theme{
			Title:       "Customer Success",
			Description: fmt.Sprintf("Elevated support traffic: %d message(s)", support),
		})
	}

	// Group 4: growth and calendar pressure.
	if opp := countMatching(d.Emails, vocab.Opportunity); opp >= 2 {
		out = append(out, Theme{
			Title:       "Growth Opportunities",
			Description: fmt.Sprintf("%d inbound message(s) signal new business", opp),
		})
	} else if next24 := eventsWithin(d.Events, now, 24*time.Hour); next24 >= 5 {
		out = append(out, Theme{
			Title:       "High Activity",
			Description: fmt.Sprintf("%d meetings in the next 24 hours", next24),
		})
	}

	// Independent check: process blockers.
	blocked := 0
	for _, t := range d.Tickets {
		if t.Status == signal.StatusBlocked {
			blocked++
		}
	}
	if blocked >= 2 {
		out = append(out, Theme{
			Title:       "Operational Efficiency",
			Description: fmt.Sprintf("%d blocked ticket(s) suggest a process bottleneck", blocked),
		})
	}

	if len(out) == 0 {
		out = append(out, Theme{
			Title:       "Business as Usual",
			Description: "No dominant pattern detected; steady state",
		})
	}
	if len(out) > maxThemes {
		out = out[:maxThemes]
	}
	return out
}

// countMatching counts emails whose subject+body match any keyword.
func countMatching(emails []signal.Email, keywords []string) int {
	n := 0
	for _, e := range emails {
		if vocab.MatchAny(e.Subject+" "+e.Body, keywords) {
			n++
		}
	}
	return n
}

// eventsWithin counts events starting in [now, now+window).
func eventsWithin(events []signal.CalendarEvent, now time.Time, window time.Duration) int {
	end := now.Add(window)
	n := 0
	for _, ev := range events {
		if !ev.Start.Before(now) && ev.Start.Before(end) {
			n++
		}
	}
	return n
}
