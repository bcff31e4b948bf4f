package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

var now = time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

func event(id string, start time.Time) signal.CalendarEvent {
	return signal.CalendarEvent{
		ID: id, Title: "meeting " + id,
		Start: start, End: start.Add(time.Hour),
	}
}

func TestWindowExcludesPastAndFarFuture(t *testing.T) {
	evs := []signal.CalendarEvent{
		event("past", now.Add(-time.Hour)),
		event("today", now.Add(2*time.Hour)),
		event("tomorrow", now.AddDate(0, 0, 1)),
		event("dayafter", now.AddDate(0, 0, 2)), // past end of tomorrow
	}

	got := Select(evs, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 events in window, got %d", len(got))
	}
	if got[0].ID != "today" || got[1].ID != "tomorrow" {
		t.Errorf("unexpected selection: %v", got)
	}
}

func TestSortedAscendingAndCapped(t *testing.T) {
	var evs []signal.CalendarEvent
	// Insert in reverse order to prove sorting
	for i := 10; i > 0; i-- {
		evs = append(evs, event(fmt.Sprintf("e%d", i), now.Add(time.Duration(i)*time.Hour)))
	}

	got := Select(evs, now)
	if len(got) != 8 {
		t.Fatalf("expected cap of 8, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Start.Before(got[i].Start) {
			t.Errorf("events not strictly ascending at %d", i)
		}
	}
	if got[0].ID != "e1" {
		t.Errorf("earliest event should be first, got %s", got[0].ID)
	}
}

func TestSoonAndTodayAnnotations(t *testing.T) {
	evs := []signal.CalendarEvent{
		event("in90m", now.Add(90*time.Minute)),
		event("in3h", now.Add(3*time.Hour)),
	}

	got := Select(evs, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}

	if !got[0].Soon {
		t.Error("event in 90 minutes must be soon")
	}
	if !got[0].Today {
		t.Error("event in 90 minutes must be today")
	}
	if got[1].Soon {
		t.Error("event in 3 hours must not be soon")
	}
	if !got[1].Today {
		t.Error("event in 3 hours on the same day must be today")
	}
}

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		title string
		want  Type
	}{
		{"Board review of Q3 launch", TypeOther}, // executive beats everything
		{"Sprint review", TypeReview},
		{"Launch retrospective", TypeReview}, // review beats launch
		{"Deploy v2 release", TypeLaunch},
		{"Contract deadline", TypeDeadline},
		{"Weekly sync", TypeMeeting},
		{"Investor update", TypeOther},
	}

	for _, tc := range cases {
		if got := Classify(tc.title); got != tc.want {
			t.Errorf("Classify(%q): expected %s, got %s", tc.title, tc.want, got)
		}
	}
}
