package metrics

import (
	"testing"
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

var now = time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

func TestEmptyDatasetYieldsNoMetrics(t *testing.T) {
	got := Compile(&signal.UnifiedDataset{}, now)
	if len(got) != 0 {
		t.Errorf("empty dataset should yield no metrics, got %v", got)
	}
}

func TestSparseOutputSkipsZeroValues(t *testing.T) {
	// One overdue ticket only: exactly two metrics should appear
	// (critical + overdue), nothing else
	due := now.Add(-24 * time.Hour)
	d := &signal.UnifiedDataset{
		Tickets: []signal.Ticket{
			{ID: "t1", Title: "fix login", Priority: signal.PriorityP0, Status: signal.StatusOpen, DueDate: &due},
		},
	}

	got := Compile(d, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 metrics, got %v", got)
	}
	if got[0].Name != "Critical Tickets" || got[0].Value != "1" {
		t.Errorf("unexpected first metric: %+v", got[0])
	}
	if got[1].Name != "Overdue Tickets" || got[1].Value != "1" {
		t.Errorf("unexpected second metric: %+v", got[1])
	}
}

func TestRevenueFormattingAndOrder(t *testing.T) {
	ended := now.Add(-30 * time.Minute)
	d := &signal.UnifiedDataset{
		Incidents: []signal.Incident{
			{ID: "i1", StartedAt: now.Add(-3 * time.Hour), EndedAt: &ended, RevenueAtRisk: 1250000, AffectedUsers: 300},
			{ID: "i2", StartedAt: now.Add(-time.Hour)}, // active
		},
	}

	got := Compile(d, now)
	want := []Metric{
		{"Revenue at Risk", "$1,250,000"},
		{"Longest Incident", "2.5h"},
		{"Affected Users", "300"},
		{"Active Incidents", "1"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d metrics, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("metric[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLongestIncidentIgnoresActive(t *testing.T) {
	// Active incidents have no duration yet; only ended ones compete
	ended := now.Add(-time.Hour)
	d := &signal.UnifiedDataset{
		Incidents: []signal.Incident{
			{ID: "i1", StartedAt: now.Add(-100 * time.Hour)}, // active, huge age
			{ID: "i2", StartedAt: now.Add(-5 * time.Hour), EndedAt: &ended},
		},
	}

	got := Compile(d, now)
	for _, m := range got {
		if m.Name == "Longest Incident" {
			if m.Value != "4.0h" {
				t.Errorf("expected 4.0h, got %s", m.Value)
			}
			return
		}
	}
	t.Error("Longest Incident metric missing")
}

func TestMeetingsTodayCountsSameCalendarDay(t *testing.T) {
	d := &signal.UnifiedDataset{
		Events: []signal.CalendarEvent{
			{ID: "e1", Start: now.Add(2 * time.Hour), End: now.Add(3 * time.Hour)},
			{ID: "e2", Start: now.AddDate(0, 0, 1), End: now.AddDate(0, 0, 1).Add(time.Hour)},
			{ID: "e3", Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)}, // earlier today still counts
		},
	}

	got := Compile(d, now)
	if len(got) != 1 {
		t.Fatalf("expected only Meetings Today, got %v", got)
	}
	if got[0].Name != "Meetings Today" || got[0].Value != "2" {
		t.Errorf("unexpected metric: %+v", got[0])
	}
}
