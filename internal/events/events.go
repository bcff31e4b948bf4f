// Package events selects and annotates the upcoming calendar events for a
// brief: everything from now through the end of tomorrow, soonest first.
package events

import (
	"sort"
	"time"

	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/vocab"
)

// Type is the coarse event classification.
type Type string

const (
	TypeMeeting  Type = "meeting"
	TypeReview   Type = "review"
	TypeLaunch   Type = "launch"
	TypeDeadline Type = "deadline"
	TypeOther    Type = "other" // executive/board-level, kept distinct on purpose
)

// Upcoming is a calendar event annotated for presentation.
type Upcoming struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location,omitempty"`
	Attendees int       `json:"attendees"`
	Type      Type      `json:"type"`
	Soon      bool      `json:"soon"`  // starts within 2 hours
	Today     bool      `json:"today"` // starts on the current calendar day
}

// maxUpcoming caps the selected event list.
const maxUpcoming = 8

// soonWindow is how far ahead an event still counts as imminent.
const soonWindow = 2 * time.Hour

// Select returns the annotated events in [now, end of tomorrow), sorted
// ascending by start time and capped at 8.
func Select(evs []signal.CalendarEvent, now time.Time) []Upcoming {
	windowEnd := endOfTomorrow(now)

	var out []Upcoming
	for _, ev := range evs {
		if ev.Start.Before(now) || !ev.Start.Before(windowEnd) {
			continue
		}
		out = append(out, Upcoming{
			ID:        ev.ID,
			Title:     ev.Title,
			Start:     ev.Start,
			End:       ev.End,
			Location:  ev.Location,
			Attendees: len(ev.Attendees),
			Type:      Classify(ev.Title),
			Soon:      ev.Start.Sub(now) <= soonWindow,
			Today:     sameDay(ev.Start, now),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	if len(out) > maxUpcoming {
		out = out[:maxUpcoming]
	}
	return out
}

// Classify maps an event title to its coarse type by fixed keyword
// precedence: executive beats review beats launch beats deadline.
func Classify(title string) Type {
	switch {
	case vocab.MatchAny(title, vocab.Executive):
		return TypeOther
	case vocab.MatchAny(title, vocab.Review):
		return TypeReview
	case vocab.MatchAny(title, vocab.Launch):
		return TypeLaunch
	case vocab.MatchAny(title, vocab.Deadline):
		return TypeDeadline
	default:
		return TypeMeeting
	}
}

// endOfTomorrow returns midnight at the start of the day after tomorrow.
func endOfTomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 2)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
