// Package brief assembles the style-independent report model.
//
// Build composes the classifier, metric compiler, theme detector, action
// item ranker, and upcoming event selector into one Model. Everything is a
// pure function of (dataset, now): no I/O, no shared state, safe to call
// concurrently.
package brief

import (
	"time"

	"github.com/abelbrown/brief/internal/events"
	"github.com/abelbrown/brief/internal/metrics"
	"github.com/abelbrown/brief/internal/rank"
	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/themes"
)

// TimeRange is the observed span of input data.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Model is the abstract brief: everything a style renderer needs, nothing
// about how it will be presented.
type Model struct {
	KeyThemes   []themes.Theme   `json:"key_themes"`
	ActionItems []rank.Item      `json:"action_items"`
	Metrics     []metrics.Metric `json:"metrics"`
	Upcoming    []events.Upcoming `json:"upcoming_events"`
	TimeRange   *TimeRange       `json:"time_range,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Build assembles the brief model for a dataset as of now.
// An empty dataset yields a minimal well-formed model: no action items, no
// metrics, the default theme, and no time range.
func Build(d *signal.UnifiedDataset, now time.Time) Model {
	return Model{
		KeyThemes:   themes.Detect(d, now),
		ActionItems: rank.Rank(d, now),
		Metrics:     metrics.Compile(d, now),
		Upcoming:    events.Select(d.Events, now),
		TimeRange:   timeRange(d),
		GeneratedAt: now,
	}
}

// timeRange spans the earliest to latest record timestamp across all four
// lists, or nil when the dataset is empty.
func timeRange(d *signal.UnifiedDataset) *TimeRange {
	var tr *TimeRange
	observe := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if tr == nil {
			tr = &TimeRange{Start: t, End: t}
			return
		}
		if t.Before(tr.Start) {
			tr.Start = t
		}
		if t.After(tr.End) {
			tr.End = t
		}
	}

	for _, e := range d.Emails {
		observe(e.Timestamp)
	}
	for _, inc := range d.Incidents {
		observe(inc.StartedAt)
		if inc.EndedAt != nil {
			observe(*inc.EndedAt)
		}
	}
	for _, ev := range d.Events {
		observe(ev.Start)
	}
	for _, t := range d.Tickets {
		if t.DueDate != nil {
			observe(*t.DueDate)
		}
	}
	return tr
}
