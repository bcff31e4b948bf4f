package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

var now = time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

func emailAt(id string, ts time.Time, subject string) signal.Email {
	return signal.Email{ID: id, Subject: subject, Timestamp: ts, Sender: "sender@example.com"}
}

func TestCommTrendHigh(t *testing.T) {
	// 7 emails over the week, 6 of them today: daily average is 1, today is
	// well past 1.5x
	var emails []signal.Email
	for i := 0; i < 6; i++ {
		emails = append(emails, emailAt(fmt.Sprintf("d%d", i), now.Add(-time.Hour), "hi"))
	}
	emails = append(emails, emailAt("w1", now.Add(-5*24*time.Hour), "hi"))

	ins := Extract(&signal.UnifiedDataset{Emails: emails}, now)
	if ins.CommTrend != TrendHigh {
		t.Errorf("expected high trend, got %s", ins.CommTrend)
	}
}

func TestCommTrendLow(t *testing.T) {
	// Plenty of traffic all week, none today
	var emails []signal.Email
	for i := 0; i < 14; i++ {
		emails = append(emails, emailAt(fmt.Sprintf("w%d", i), now.Add(-time.Duration(30+i)*time.Hour), "hi"))
	}

	ins := Extract(&signal.UnifiedDataset{Emails: emails}, now)
	if ins.CommTrend != TrendLow {
		t.Errorf("expected low trend, got %s", ins.CommTrend)
	}
}

func TestCommTrendNormalOnEmpty(t *testing.T) {
	ins := Extract(&signal.UnifiedDataset{}, now)
	if ins.CommTrend != TrendNormal {
		t.Errorf("empty dataset should be normal trend, got %s", ins.CommTrend)
	}
}

func TestTopTopicsRankedAndCapped(t *testing.T) {
	var emails []signal.Email
	add := func(n int, subject string) {
		for i := 0; i < n; i++ {
			emails = append(emails, emailAt(fmt.Sprintf("%s%d", subject, i), now, subject))
		}
	}
	add(4, "security alert")
	add(3, "launch planning")
	add(2, "budget question")
	add(1, "hiring pipeline")
	add(1, "roadmap input")
	add(1, "customer call")

	ins := Extract(&signal.UnifiedDataset{Emails: emails}, now)
	if len(ins.TopTopics) != 5 {
		t.Fatalf("expected 5 topics, got %v", ins.TopTopics)
	}
	if ins.TopTopics[0].Word != "security" || ins.TopTopics[0].Count != 4 {
		t.Errorf("expected security first, got %+v", ins.TopTopics[0])
	}
	if ins.TopTopics[1].Word != "launch" || ins.TopTopics[1].Count != 3 {
		t.Errorf("expected launch second, got %+v", ins.TopTopics[1])
	}
}

func TestMomentumDecliningBeatsBlocked(t *testing.T) {
	past := now.Add(-48 * time.Hour)
	var tickets []signal.Ticket
	for i := 0; i < 4; i++ {
		tickets = append(tickets, signal.Ticket{
			ID: fmt.Sprintf("o%d", i), Priority: signal.PriorityP2,
			Status: signal.StatusOpen, DueDate: &past,
		})
	}
	for i := 0; i < 3; i++ {
		tickets = append(tickets, signal.Ticket{
			ID: fmt.Sprintf("b%d", i), Priority: signal.PriorityP2,
			Status: signal.StatusBlocked,
		})
	}

	ins := Extract(&signal.UnifiedDataset{Tickets: tickets}, now)
	if ins.Momentum != MomentumDeclining {
		t.Errorf("expected declining, got %s", ins.Momentum)
	}
	if ins.OverdueTickets != 4 || ins.BlockedTickets != 3 {
		t.Errorf("unexpected risk counters: %+v", ins)
	}
}

func TestExecutiveMeetingsFlagged(t *testing.T) {
	d := &signal.UnifiedDataset{
		Events: []signal.CalendarEvent{
			{ID: "e1", Title: "Board prep", Start: now.Add(2 * time.Hour), End: now.Add(3 * time.Hour)},
			{ID: "e2", Title: "Standup", Start: now.Add(4 * time.Hour), End: now.Add(5 * time.Hour)},
			{ID: "e3", Title: "Investor dinner", Start: now.AddDate(0, 0, 1), End: now.AddDate(0, 0, 1).Add(time.Hour)},
		},
	}

	ins := Extract(d, now)
	if ins.MeetingsToday != 2 || ins.MeetingsTomorrow != 1 {
		t.Errorf("unexpected meeting counts: today=%d tomorrow=%d", ins.MeetingsToday, ins.MeetingsTomorrow)
	}
	if len(ins.ExecutiveMeetings) != 2 {
		t.Errorf("expected 2 executive meetings, got %v", ins.ExecutiveMeetings)
	}
}

func TestTopContactsUseRealTimestamps(t *testing.T) {
	d := &signal.UnifiedDataset{
		Emails: []signal.Email{
			{ID: "1", Sender: "alice", Timestamp: now.Add(-3 * time.Hour)},
			{ID: "2", Sender: "alice", Timestamp: now.Add(-time.Hour)},
			{ID: "3", Sender: "bob", Timestamp: now.Add(-2 * time.Hour)},
		},
	}

	ins := Extract(d, now)
	if len(ins.TopContacts) != 2 {
		t.Fatalf("expected 2 contacts, got %v", ins.TopContacts)
	}
	if ins.TopContacts[0].Sender != "alice" || ins.TopContacts[0].Messages != 2 {
		t.Errorf("expected alice first with 2 messages, got %+v", ins.TopContacts[0])
	}
	if !ins.TopContacts[0].LastContact.Equal(now.Add(-time.Hour)) {
		t.Errorf("last contact must be the newest real timestamp, got %v", ins.TopContacts[0].LastContact)
	}
}
