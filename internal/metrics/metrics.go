// Package metrics compiles the sparse headline-number list for a brief.
//
// Output is sparse on purpose: a metric only appears when its underlying
// value is nonzero, so a quiet day produces an empty list rather than a
// wall of zeros.
package metrics

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/abelbrown/brief/internal/signal"
)

// Metric is one named value surfaced in the brief.
type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Compile computes the metric list for a dataset as of now.
// Candidate order is fixed; unqualified candidates are skipped entirely.
func Compile(d *signal.UnifiedDataset, now time.Time) []Metric {
	var out []Metric

	var revenue float64
	var affected, active int
	longest := time.Duration(0)
	for _, inc := range d.Incidents {
		revenue += inc.RevenueAtRisk
		affected += inc.AffectedUsers
		if inc.Active() {
			active++
			continue
		}
		if dur := inc.EndedAt.Sub(inc.StartedAt); dur > longest {
			longest = dur
		}
	}

	if revenue > 0 {
		out = append(out, Metric{"Revenue at Risk", "$" + humanize.Commaf(revenue)})
	}
	if longest > 0 {
		out = append(out, Metric{"Longest Incident", fmt.Sprintf("%.1fh", longest.Hours())})
	}
	if affected > 0 {
		out = append(out, Metric{"Affected Users", humanize.Comma(int64(affected))})
	}
	if active > 0 {
		out = append(out, Metric{"Active Incidents", fmt.Sprintf("%d", active)})
	}

	cutoff := now.Add(-24 * time.Hour)
	recent := 0
	for _, e := range d.Emails {
		if e.Timestamp.After(cutoff) {
			recent++
		}
	}
	if recent > 0 {
		out = append(out, Metric{"Messages (24h)", fmt.Sprintf("%d", recent)})
	}

	critical, overdue := 0, 0
	for _, t := range d.Tickets {
		if t.Critical() {
			critical++
		}
		if t.Overdue(now) {
			overdue++
		}
	}
	if critical > 0 {
		out = append(out, Metric{"Critical Tickets", fmt.Sprintf("%d", critical)})
	}
	if overdue > 0 {
		out = append(out, Metric{"Overdue Tickets", fmt.Sprintf("%d", overdue)})
	}

	today := 0
	for _, ev := range d.Events {
		if sameDay(ev.Start, now) {
			today++
		}
	}
	if today > 0 {
		out = append(out, Metric{"Meetings Today", fmt.Sprintf("%d", today)})
	}

	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
