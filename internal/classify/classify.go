// Package classify derives the coarse business context for a dataset:
// how urgent things are right now, and who the key people are.
package classify

import (
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

// Urgency is the coarse business-criticality level.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyCrisis Urgency = "crisis"
)

// Context summarizes the business state of one dataset.
// Ephemeral: rebuilt from scratch on every invocation.
type Context struct {
	Urgency            Urgency  `json:"urgency"`
	HasActiveIncidents bool     `json:"has_active_incidents"`
	TotalRevenueAtRisk float64  `json:"total_revenue_at_risk"`
	CriticalIssueCount int      `json:"critical_issue_count"`
	RecentMessages     int      `json:"recent_messages_24h"`
	Stakeholders       []string `json:"stakeholders,omitempty"`
}

// revenueHighWater is the revenue-at-risk threshold that alone forces high urgency.
const revenueHighWater = 1_000_000

// maxStakeholders caps the stakeholder list.
const maxStakeholders = 5

// smallMeetingSize is the attendee cap below which a meeting's first
// attendees count as stakeholders. Big meetings tell you nothing about
// who matters.
const smallMeetingSize = 5

// Classify builds the business context for a dataset as of now.
// Empty input yields a valid low-urgency context, never an error.
func Classify(d *signal.UnifiedDataset, now time.Time) Context {
	ctx := Context{}

	for _, inc := range d.Incidents {
		if inc.Active() {
			ctx.HasActiveIncidents = true
		}
		ctx.TotalRevenueAtRisk += inc.RevenueAtRisk
	}

	for _, t := range d.Tickets {
		if t.Critical() {
			ctx.CriticalIssueCount++
		}
	}

	cutoff := now.Add(-24 * time.Hour)
	for _, e := range d.Emails {
		if e.Timestamp.After(cutoff) {
			ctx.RecentMessages++
		}
	}

	// Fixed cascade, first match wins.
	switch {
	case ctx.HasActiveIncidents:
		ctx.Urgency = UrgencyCrisis
	case ctx.CriticalIssueCount >= 3 || ctx.TotalRevenueAtRisk > revenueHighWater:
		ctx.Urgency = UrgencyHigh
	case ctx.CriticalIssueCount > 0 || ctx.RecentMessages > 10:
		ctx.Urgency = UrgencyMedium
	default:
		ctx.Urgency = UrgencyLow
	}

	ctx.Stakeholders = stakeholders(d)
	return ctx
}

// stakeholders collects up to 5 names in first-discovery order: incident
// owners, then ticket owners, then the first two attendees of any small
// meeting. Input lists are ordered slices, so discovery order is
// deterministic without a secondary sort.
func stakeholders(d *signal.UnifiedDataset) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(name string) {
		if name == "" || seen[name] || len(out) >= maxStakeholders {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, inc := range d.Incidents {
		add(inc.Owner)
	}
	for _, t := range d.Tickets {
		add(t.Owner)
	}
	for _, ev := range d.Events {
		if len(ev.Attendees) == 0 || len(ev.Attendees) > smallMeetingSize {
			continue
		}
		for i, a := range ev.Attendees {
			if i >= 2 {
				break
			}
			add(a.Name)
		}
	}

	return out
}
