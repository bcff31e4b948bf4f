package render

import (
	"fmt"
	"time"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/metrics"
)

// ConsultingReport is the management-consulting style document: findings,
// recommendations, and a resource allocation table.
type ConsultingReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Style       Style     `json:"style"`
	Subject     string    `json:"subject"`
	Summary     string    `json:"summary"`

	Assessment      string           `json:"assessment"`
	KeyFindings     []Finding        `json:"key_findings"`
	Recommendations []Recommendation `json:"recommendations"`
	KPIs            []metrics.Metric `json:"kpis"`
	Allocation      []BudgetLine     `json:"resource_allocation"`
	Engagements     []string         `json:"upcoming_engagements,omitempty"`
	Methodology     string           `json:"methodology"`
}

// Finding is a theme phrased as a numbered observation.
type Finding struct {
	Ref         string `json:"ref"` // F1, F2, ...
	Observation string `json:"observation"`
	Detail      string `json:"detail"`
}

// Recommendation is an action item with consulting framing.
type Recommendation struct {
	Ref      string `json:"ref"` // R1, R2, ...
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Owner    string `json:"owner"`
}

func (ConsultingReport) DocStyle() Style { return StyleConsulting }

// assessments maps urgency to the engagement-level framing.
var assessments = map[classify.Urgency]string{
	classify.UrgencyCrisis: "The organization is in active crisis; immediate stabilization is the only priority.",
	classify.UrgencyHigh:   "Material risk exposure identified; near-term intervention is advised.",
	classify.UrgencyMedium: "Operations are broadly on track with localized friction points.",
	classify.UrgencyLow:    "Operations are stable; capacity exists for strategic initiatives.",
}

func renderConsulting(in Input) Document {
	doc := ConsultingReport{
		GeneratedAt: in.Model.GeneratedAt,
		Style:       StyleConsulting,
		Subject:     "Operational Review: " + in.Model.GeneratedAt.Format("January 2, 2006"),
		Assessment:  assessments[in.Context.Urgency],
		KPIs:        in.Model.Metrics,
		Allocation:  budgetTable(in.Context.Urgency),
		Methodology: in.Attribution,
	}

	doc.Summary = fmt.Sprintf("%d findings, %d recommendations. Posture: %s.",
		len(in.Model.KeyThemes), len(in.Model.ActionItems), in.Context.Urgency)

	for i, th := range in.Model.KeyThemes {
		doc.KeyFindings = append(doc.KeyFindings, Finding{
			Ref:         fmt.Sprintf("F%d", i+1),
			Observation: th.Title,
			Detail:      th.Description,
		})
	}

	for i, item := range in.Model.ActionItems {
		doc.Recommendations = append(doc.Recommendations, Recommendation{
			Ref:      fmt.Sprintf("R%d", i+1),
			Action:   item.Title,
			Priority: string(item.Priority),
			Owner:    item.Owner,
		})
	}

	for _, ev := range in.Model.Upcoming {
		doc.Engagements = append(doc.Engagements, scheduleLine(ev))
	}

	return doc
}
