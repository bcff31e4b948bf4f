package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/metrics"
	"github.com/abelbrown/brief/internal/themes"
)

// MissionBrief is the military-operations style document. Default style.
type MissionBrief struct {
	GeneratedAt time.Time `json:"generated_at"`
	Style       Style     `json:"style"`
	Subject     string    `json:"subject"`
	Summary     string    `json:"summary"`

	ThreatLevel string           `json:"threat_level"`
	SitRep      []string         `json:"sitrep"`
	Objectives  []Objective      `json:"objectives"`
	Intel       []metrics.Metric `json:"intel"`
	Timeline    []string         `json:"timeline,omitempty"`
	CommsStatus string           `json:"comms_status"`
	Source      string           `json:"source"`
}

// Objective is an action item phrased as an ops order.
type Objective struct {
	Designation string `json:"designation"` // OBJ-1, OBJ-2, ...
	Order       string `json:"order"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
}

func (MissionBrief) DocStyle() Style { return StyleMissionBrief }

// threatLevels maps urgency to the mission vocabulary.
var threatLevels = map[classify.Urgency]string{
	classify.UrgencyCrisis: "CONDITION RED",
	classify.UrgencyHigh:   "CONDITION ORANGE",
	classify.UrgencyMedium: "CONDITION YELLOW",
	classify.UrgencyLow:    "CONDITION GREEN",
}

func renderMission(in Input) Document {
	doc := MissionBrief{
		GeneratedAt: in.Model.GeneratedAt,
		Style:       StyleMissionBrief,
		Subject:     fmt.Sprintf("MISSION BRIEF / %s", strings.ToUpper(in.Model.GeneratedAt.Format("02 Jan 2006"))),
		ThreatLevel: threatLevels[in.Context.Urgency],
		Intel:       in.Model.Metrics,
		Source:      in.Attribution,
	}

	doc.Summary = missionSummary(in.Context, len(in.Model.ActionItems))

	for _, th := range in.Model.KeyThemes {
		doc.SitRep = append(doc.SitRep, sitrepLine(th))
	}

	for i, item := range in.Model.ActionItems {
		doc.Objectives = append(doc.Objectives, Objective{
			Designation: fmt.Sprintf("OBJ-%d", i+1),
			Order:       item.Title,
			Priority:    strings.ToUpper(string(item.Priority)),
			AssignedTo:  item.Owner,
		})
	}

	for _, ev := range in.Model.Upcoming {
		doc.Timeline = append(doc.Timeline, scheduleLine(ev))
	}

	doc.CommsStatus = fmt.Sprintf("Traffic %s; %d transmissions in last 24h",
		in.Insights.CommTrend, in.Context.RecentMessages)

	return doc
}

// missionSummary selects the situation line by urgency tier.
func missionSummary(ctx classify.Context, objectives int) string {
	switch ctx.Urgency {
	case classify.UrgencyCrisis:
		return fmt.Sprintf("Active engagement in progress. %d objectives on the board. All hands.", objectives)
	case classify.UrgencyHigh:
		return fmt.Sprintf("Elevated threat posture: %d critical issues tracked. %d objectives assigned.",
			ctx.CriticalIssueCount, objectives)
	case classify.UrgencyMedium:
		return fmt.Sprintf("Situation developing. %d objectives assigned, monitoring continues.", objectives)
	default:
		return "All quiet on the perimeter. Proceed with planned operations."
	}
}

func sitrepLine(th themes.Theme) string {
	return th.Title + ": " + th.Description
}
