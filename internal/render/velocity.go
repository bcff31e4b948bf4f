package render

import (
	"fmt"
	"time"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/metrics"
)

// VelocityReport is the startup-velocity style document: short, punchy,
// momentum-first.
type VelocityReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Style       Style     `json:"style"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`

	Vibe      string           `json:"vibe"`
	Momentum  string           `json:"momentum"`
	ShipList  []ShipItem       `json:"ship_list"`
	TopOfMind []string         `json:"top_of_mind"`
	Numbers   []metrics.Metric `json:"numbers"`
	Today     []string         `json:"today,omitempty"`
	Kudos     []string         `json:"kudos,omitempty"`
	Source    string           `json:"source"`
}

// ShipItem is an action item phrased as something to ship or unblock.
type ShipItem struct {
	What     string `json:"what"`
	Priority string `json:"priority"`
	Who      string `json:"who"`
}

func (VelocityReport) DocStyle() Style { return StyleVelocity }

// vibes maps urgency to the one-word mood the team reads first.
var vibes = map[classify.Urgency]string{
	classify.UrgencyCrisis: "firefighting",
	classify.UrgencyHigh:   "heads-down",
	classify.UrgencyMedium: "grinding",
	classify.UrgencyLow:    "cruising",
}

func renderVelocity(in Input) Document {
	doc := VelocityReport{
		GeneratedAt: in.Model.GeneratedAt,
		Style:       StyleVelocity,
		Headline:    velocityHeadline(in.Context),
		Vibe:        vibes[in.Context.Urgency],
		Momentum:    string(in.Insights.Momentum),
		Numbers:     in.Model.Metrics,
		Kudos:       kudos(in.Context),
		Source:      in.Attribution,
	}

	doc.Summary = fmt.Sprintf("%d things on the ship list, momentum %s, comms %s.",
		len(in.Model.ActionItems), in.Insights.Momentum, in.Insights.CommTrend)

	for _, item := range in.Model.ActionItems {
		doc.ShipList = append(doc.ShipList, ShipItem{
			What:     item.Title,
			Priority: string(item.Priority),
			Who:      item.Owner,
		})
	}

	for _, th := range in.Model.KeyThemes {
		doc.TopOfMind = append(doc.TopOfMind, th.Title)
	}

	for _, ev := range in.Model.Upcoming {
		if ev.Today {
			doc.Today = append(doc.Today, scheduleLine(ev))
		}
	}

	return doc
}

func velocityHeadline(ctx classify.Context) string {
	switch ctx.Urgency {
	case classify.UrgencyCrisis:
		return "Drop everything: we have a live incident"
	case classify.UrgencyHigh:
		return "Hot week: critical work is stacking up"
	case classify.UrgencyMedium:
		return "Solid pace, a few things need a push"
	default:
		return "Smooth sailing: keep shipping"
	}
}
