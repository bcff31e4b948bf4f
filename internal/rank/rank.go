// Package rank produces the prioritized action item list for a brief.
//
// Ranking is a fixed severity cascade rather than a single score: live
// emergencies first, then contractual breaches, then recent-incident
// follow-through, then current critical work, then process blockers.
// Qualitatively different kinds of urgency never compete on one axis.
package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

// Priority is the action item urgency tier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Item is one ranked, deduplicated unit of recommended work.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
	Status   string   `json:"status"`
	Owner    string   `json:"owner,omitempty"`
	Source   string   `json:"source"` // "incident" or "ticket"
}

// maxItems caps the final action item list.
const maxItems = 10

// Per-pass caps. Pass 1 (active incidents) is uncapped.
const (
	maxOverdueCritical = 3
	maxPostmortems     = 2
	maxOpenCritical    = 4
	maxBlocked         = 2
)

// Rank builds the action item list for a dataset as of now.
// Five ordered passes append candidates; later passes never evict earlier
// ones. The result is deduplicated by id (first occurrence wins) and
// truncated to 10.
func Rank(d *signal.UnifiedDataset, now time.Time) []Item {
	var out []Item

	out = append(out, activeIncidents(d)...)
	out = append(out, overdueCritical(d, now)...)
	out = append(out, postmortems(d, now)...)
	out = append(out, openCritical(d, now)...)
	out = append(out, blocked(d)...)

	out = dedupe(out)
	if len(out) > maxItems {
		out = out[:maxItems]
	}
	return out
}

// Pass 1: every active incident, uncapped.
func activeIncidents(d *signal.UnifiedDataset) []Item {
	var out []Item
	for _, inc := range d.Incidents {
		if !inc.Active() {
			continue
		}
		out = append(out, Item{
			ID:       inc.ID,
			Title:    "Resolve incident: " + inc.Title,
			Priority: PriorityHigh,
			Status:   string(signal.StatusInProgress),
			Owner:    owner(inc.Owner),
			Source:   "incident",
		})
	}
	return out
}

// Pass 2: overdue critical tickets, ascending due date, capped at 3.
// The label carries days overdue.
func overdueCritical(d *signal.UnifiedDataset, now time.Time) []Item {
	var tickets []signal.Ticket
	for _, t := range d.Tickets {
		if t.Critical() && t.Overdue(now) {
			tickets = append(tickets, t)
		}
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].DueDate.Before(*tickets[j].DueDate)
	})
	if len(tickets) > maxOverdueCritical {
		tickets = tickets[:maxOverdueCritical]
	}

	out := make([]Item, 0, len(tickets))
	for _, t := range tickets {
		days := int(now.Sub(*t.DueDate).Hours() / 24)
		out = append(out, Item{
			ID:       t.ID,
			Title:    fmt.Sprintf("%s (%d days overdue)", t.Title, days),
			Priority: PriorityHigh,
			Status:   string(t.Status),
			Owner:    owner(t.Owner),
			Source:   "ticket",
		})
	}
	return out
}

// Pass 3: incidents that started in the last 48h and already ended.
// Postmortem candidates, capped at 2.
func postmortems(d *signal.UnifiedDataset, now time.Time) []Item {
	cutoff := now.Add(-48 * time.Hour)
	var out []Item
	for _, inc := range d.Incidents {
		if inc.Active() || !inc.StartedAt.After(cutoff) {
			continue
		}
		out = append(out, Item{
			ID:       inc.ID,
			Title:    "Postmortem: " + inc.Title,
			Priority: PriorityMedium,
			Status:   string(signal.StatusOpen),
			Owner:    owner(inc.Owner),
			Source:   "incident",
		})
		if len(out) == maxPostmortems {
			break
		}
	}
	return out
}

// Pass 4: remaining open critical tickets (not overdue). Sort key is due
// date ascending with missing dates last, then p0 before p1. Capped at 4.
// Same-calendar-day due dates are flagged in the label.
func openCritical(d *signal.UnifiedDataset, now time.Time) []Item {
	var tickets []signal.Ticket
	for _, t := range d.Tickets {
		if t.Critical() && !t.Overdue(now) {
			tickets = append(tickets, t)
		}
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		a, b := tickets[i], tickets[j]
		switch {
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		case (a.DueDate != nil) != (b.DueDate != nil):
			return a.DueDate != nil
		default:
			return a.Priority == signal.PriorityP0 && b.Priority != signal.PriorityP0
		}
	})
	if len(tickets) > maxOpenCritical {
		tickets = tickets[:maxOpenCritical]
	}

	out := make([]Item, 0, len(tickets))
	for _, t := range tickets {
		title := t.Title
		if t.DueDate != nil && sameDay(*t.DueDate, now) {
			title += " (due today)"
		}
		out = append(out, Item{
			ID:       t.ID,
			Title:    title,
			Priority: PriorityHigh,
			Status:   string(t.Status),
			Owner:    owner(t.Owner),
			Source:   "ticket",
		})
	}
	return out
}

// Pass 5: blocked tickets of any priority, capped at 2. Critical blockers
// escalate to high, the rest to medium.
func blocked(d *signal.UnifiedDataset) []Item {
	var out []Item
	for _, t := range d.Tickets {
		if t.Status != signal.StatusBlocked {
			continue
		}
		prio := PriorityMedium
		if t.Priority == signal.PriorityP0 || t.Priority == signal.PriorityP1 {
			prio = PriorityHigh
		}
		out = append(out, Item{
			ID:       t.ID,
			Title:    "Unblock: " + t.Title,
			Priority: prio,
			Status:   string(t.Status),
			Owner:    owner(t.Owner),
			Source:   "ticket",
		})
		if len(out) == maxBlocked {
			break
		}
	}
	return out
}

// dedupe keeps the first occurrence of each id.
func dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// owner falls back to "TBD" for records with no owner.
func owner(name string) string {
	if name == "" {
		return "TBD"
	}
	return name
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
