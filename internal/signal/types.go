// Package signal defines the unified record model for brief generation.
//
// Four record kinds flow into the engine: email messages, operational
// incidents, calendar events, and tracking tickets. Upstream adapters
// normalize whatever their external source returns into these shapes;
// everything downstream is a pure function of a UnifiedDataset.
package signal

import "time"

// TicketPriority is the closed priority set for tracking tickets.
type TicketPriority string

const (
	PriorityP0 TicketPriority = "p0"
	PriorityP1 TicketPriority = "p1"
	PriorityP2 TicketPriority = "p2"
	PriorityP3 TicketPriority = "p3"
)

// TicketStatus is the closed workflow state set for tracking tickets.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusBlocked    TicketStatus = "blocked"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

// Email is a single communication message.
// Immutable once fetched.
type Email struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Sender     string    `json:"sender"`
	Recipients []string  `json:"recipients"`
	Timestamp  time.Time `json:"timestamp"`
	Labels     []string  `json:"labels,omitempty"`

	// Insight carries optional upstream classification metadata.
	Insight *EmailInsight `json:"insight,omitempty"`
}

// EmailInsight is optional metadata attached by an upstream classifier.
type EmailInsight struct {
	PriorityTier string `json:"priority_tier,omitempty"`
	Urgent       bool   `json:"urgent,omitempty"`
}

// Incident is an operational incident. A nil EndedAt means still active.
type Incident struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	RevenueAtRisk float64    `json:"revenue_at_risk,omitempty"`
	AffectedUsers int        `json:"affected_users,omitempty"`
	Owner         string     `json:"owner,omitempty"`
}

// Active reports whether the incident is still ongoing.
func (i Incident) Active() bool { return i.EndedAt == nil }

// Attendee is a name/email pair on a calendar event.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CalendarEvent is a scheduled meeting or appointment.
type CalendarEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Attendees   []Attendee `json:"attendees,omitempty"`
	Location    string     `json:"location,omitempty"`
}

// Ticket is a tracking ticket from a work management system.
type Ticket struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Owner       string         `json:"owner,omitempty"`
}

// Critical reports whether the ticket is p0/p1 and not closed.
func (t Ticket) Critical() bool {
	return (t.Priority == PriorityP0 || t.Priority == PriorityP1) && t.Status != StatusClosed
}

// Overdue reports whether the ticket has a due date before now and is not closed.
func (t Ticket) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusClosed
}

// UnifiedDataset is the normalized input to the brief engine.
// Lists may be empty; no record appears twice with the same id in one list.
type UnifiedDataset struct {
	Emails    []Email         `json:"emails"`
	Incidents []Incident      `json:"incidents"`
	Events    []CalendarEvent `json:"calendar_events"`
	Tickets   []Ticket        `json:"tickets"`
	FetchedAt time.Time       `json:"fetched_at"`
}
