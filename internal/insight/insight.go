// Package insight computes supplementary analysis the style renderers draw
// on: communication trend, topic frequency, meeting load, momentum, and
// risk counters. Independent of the brief model itself.
package insight

import (
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/vocab"
)

// Trend is the communication-volume classification.
type Trend string

const (
	TrendHigh   Trend = "high"
	TrendNormal Trend = "normal"
	TrendLow    Trend = "low"
)

// Momentum is the project delivery classification.
type Momentum string

const (
	MomentumSteady    Momentum = "steady"
	MomentumBlocked   Momentum = "blocked"
	MomentumDeclining Momentum = "declining"
)

// Topic is one vocabulary entry with its observed frequency.
type Topic struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Contact is a correspondent with their most recent message time.
// Derived from actual message timestamps, never synthesized.
type Contact struct {
	Sender      string    `json:"sender"`
	LastContact time.Time `json:"last_contact"`
	Messages    int       `json:"messages"`
}

// Insights is the supplementary analysis bundle for one dataset.
type Insights struct {
	CommTrend         Trend     `json:"comm_trend"`
	TopTopics         []Topic   `json:"top_topics,omitempty"`
	MeetingsToday     int       `json:"meetings_today"`
	MeetingsTomorrow  int       `json:"meetings_tomorrow"`
	ExecutiveMeetings []string  `json:"executive_meetings,omitempty"`
	Momentum          Momentum  `json:"momentum"`
	OverdueTickets    int       `json:"overdue_tickets"`
	BlockedTickets    int       `json:"blocked_tickets"`
	ActiveIncidents   int       `json:"active_incidents"`
	TopContacts       []Contact `json:"top_contacts,omitempty"`
}

// maxTopics caps the topic frequency list.
const maxTopics = 5

// maxContacts caps the correspondent list.
const maxContacts = 5

// Extract computes insights for a dataset as of now.
func Extract(d *signal.UnifiedDataset, now time.Time) Insights {
	ins := Insights{
		CommTrend: commTrend(d.Emails, now),
		TopTopics: topTopics(d.Emails),
	}

	for _, ev := range d.Events {
		switch {
		case sameDay(ev.Start, now):
			ins.MeetingsToday++
		case sameDay(ev.Start, now.AddDate(0, 0, 1)):
			ins.MeetingsTomorrow++
		}
		if vocab.MatchAny(ev.Title, vocab.Executive) {
			ins.ExecutiveMeetings = append(ins.ExecutiveMeetings, ev.Title)
		}
	}

	for _, t := range d.Tickets {
		if t.Overdue(now) {
			ins.OverdueTickets++
		}
		if t.Status == signal.StatusBlocked {
			ins.BlockedTickets++
		}
	}
	for _, inc := range d.Incidents {
		if inc.Active() {
			ins.ActiveIncidents++
		}
	}

	switch {
	case ins.OverdueTickets > 3:
		ins.Momentum = MomentumDeclining
	case ins.BlockedTickets > 2:
		ins.Momentum = MomentumBlocked
	default:
		ins.Momentum = MomentumSteady
	}

	ins.TopContacts = topContacts(d.Emails)
	return ins
}

// commTrend compares the last 24 hours against the 7-day daily average.
// More than 1.5x the average is high, under 0.5x is low.
func commTrend(emails []signal.Email, now time.Time) Trend {
	day, week := 0, 0
	dayCutoff := now.Add(-24 * time.Hour)
	weekCutoff := now.Add(-7 * 24 * time.Hour)
	for _, e := range emails {
		if e.Timestamp.After(weekCutoff) {
			week++
		}
		if e.Timestamp.After(dayCutoff) {
			day++
		}
	}

	avg := float64(week) / 7
	switch {
	case float64(day) > avg*1.5:
		return TrendHigh
	case float64(day) < avg*0.5:
		return TrendLow
	default:
		return TrendNormal
	}
}

// topTopics counts vocabulary hits across subject+body and keeps the top
// five. Ties resolve in vocabulary order so output is stable.
func topTopics(emails []signal.Email) []Topic {
	counts := make(map[string]int, len(vocab.Topics))
	for _, e := range emails {
		text := strings.ToLower(e.Subject + " " + e.Body)
		for _, word := range vocab.Topics {
			if strings.Contains(text, word) {
				counts[word]++
			}
		}
	}

	var out []Topic
	for _, word := range vocab.Topics {
		if counts[word] > 0 {
			out = append(out, Topic{Word: word, Count: counts[word]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > maxTopics {
		out = out[:maxTopics]
	}
	return out
}

// topContacts ranks senders by message count. Last contact is the most
// recent message timestamp per sender; ties resolve by sender name.
func topContacts(emails []signal.Email) []Contact {
	byName := make(map[string]*Contact)
	for _, e := range emails {
		if e.Sender == "" {
			continue
		}
		c, ok := byName[e.Sender]
		if !ok {
			c = &Contact{Sender: e.Sender}
			byName[e.Sender] = c
		}
		c.Messages++
		if e.Timestamp.After(c.LastContact) {
			c.LastContact = e.Timestamp
		}
	}

	out := make([]Contact, 0, len(byName))
	for _, c := range byName {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Messages != out[j].Messages {
			return out[i].Messages > out[j].Messages
		}
		return out[i].Sender < out[j].Sender
	})
	if len(out) > maxContacts {
		out = out[:maxContacts]
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
