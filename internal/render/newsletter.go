package render

import (
	"fmt"
	"time"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/metrics"
)

// Newsletter is the friendly digest style document.
type Newsletter struct {
	GeneratedAt time.Time `json:"generated_at"`
	Style       Style     `json:"style"`
	Subject     string    `json:"subject"`
	Summary     string    `json:"summary"`

	Intro        string           `json:"intro"`
	TopStories   []Story          `json:"top_stories"`
	ActionCorner []string         `json:"action_corner"`
	ByTheNumbers []metrics.Metric `json:"by_the_numbers"`
	OnTheRadar   []string         `json:"on_the_radar,omitempty"`
	Shoutouts    []string         `json:"shoutouts,omitempty"`
	SignOff      string           `json:"sign_off"`
}

// Story is a theme presented as a newsletter item.
type Story struct {
	Headline string `json:"headline"`
	Blurb    string `json:"blurb"`
}

func (Newsletter) DocStyle() Style { return StyleNewsletter }

// intros maps urgency to the opening line.
var intros = map[classify.Urgency]string{
	classify.UrgencyCrisis: "No easing into it today: there is an active incident and it leads everything below.",
	classify.UrgencyHigh:   "Busy stretch ahead. A few critical items need eyes before anything else.",
	classify.UrgencyMedium: "A steady day with a couple of things worth your attention.",
	classify.UrgencyLow:    "A quiet one. Here is the roundup anyway.",
}

func renderNewsletter(in Input) Document {
	doc := Newsletter{
		GeneratedAt:  in.Model.GeneratedAt,
		Style:        StyleNewsletter,
		Subject:      "Your Daily Roundup, " + in.Model.GeneratedAt.Format("Jan 2"),
		Intro:        intros[in.Context.Urgency],
		ByTheNumbers: in.Model.Metrics,
		Shoutouts:    kudos(in.Context),
		SignOff:      "That's all for now. " + in.Attribution + ".",
	}

	doc.Summary = fmt.Sprintf("%s edition: %d stories, %d action items.",
		in.Context.Urgency, len(in.Model.KeyThemes), len(in.Model.ActionItems))

	for _, th := range in.Model.KeyThemes {
		doc.TopStories = append(doc.TopStories, Story{Headline: th.Title, Blurb: th.Description})
	}

	for _, item := range in.Model.ActionItems {
		line := item.Title
		if item.Owner != "TBD" {
			line += " (" + item.Owner + ")"
		}
		doc.ActionCorner = append(doc.ActionCorner, line)
	}

	for _, ev := range in.Model.Upcoming {
		doc.OnTheRadar = append(doc.OnTheRadar, scheduleLine(ev))
	}

	return doc
}
