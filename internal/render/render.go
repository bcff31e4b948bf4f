// Package render turns an assembled brief into one of four stylistic
// documents. Renderers only re-present upstream results -- headline
// selection, budget tables, scheduling copy -- and never analyze raw data
// themselves. Identical input and style produce byte-identical output.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/brief/internal/brief"
	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/insight"
	"github.com/abelbrown/brief/internal/signal"
)

// Style selects one of the four presentation formats.
type Style string

const (
	StyleMissionBrief Style = "mission_brief"
	StyleVelocity     Style = "startup_velocity"
	StyleConsulting   Style = "management_consulting"
	StyleNewsletter   Style = "newsletter"
)

// Styles lists all supported styles in a fixed order.
var Styles = []Style{StyleMissionBrief, StyleVelocity, StyleConsulting, StyleNewsletter}

// ParseStyle maps a string to a Style. Unrecognized values fall back to
// mission_brief per the input contract.
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleMissionBrief, StyleVelocity, StyleConsulting, StyleNewsletter:
		return Style(s)
	default:
		return StyleMissionBrief
	}
}

// Input is the complete renderer input. Renderers never reach past it.
type Input struct {
	Model       brief.Model
	Context     classify.Context
	Insights    insight.Insights
	Attribution string // human-readable data provenance line
}

// Document is a rendered style-specific brief.
type Document interface {
	// DocStyle returns the style tag embedded in the document.
	DocStyle() Style
}

// renderer is a pure Input -> Document function.
type renderer func(Input) Document

// registry maps each style to its renderer. Closed set, fixed at init.
var registry = map[Style]renderer{
	StyleMissionBrief: renderMission,
	StyleVelocity:     renderVelocity,
	StyleConsulting:   renderConsulting,
	StyleNewsletter:   renderNewsletter,
}

// Render produces the document for one style from prepared inputs.
func Render(in Input, style Style) Document {
	r, ok := registry[style]
	if !ok {
		r = registry[StyleMissionBrief]
	}
	return r(in)
}

// Generate runs the whole engine for one dataset and style: assemble the
// model, classify the context, extract insights, render. Pure; now is the
// only clock.
func Generate(d *signal.UnifiedDataset, style Style, now time.Time) Document {
	in := Input{
		Model:       brief.Build(d, now),
		Context:     classify.Classify(d, now),
		Insights:    insight.Extract(d, now),
		Attribution: attribution(d),
	}
	return Render(in, style)
}

// GenerateAll renders every style for one dataset in parallel. Correct
// without locking because every component is a pure function.
func GenerateAll(d *signal.UnifiedDataset, now time.Time) map[Style]Document {
	in := Input{
		Model:       brief.Build(d, now),
		Context:     classify.Classify(d, now),
		Insights:    insight.Extract(d, now),
		Attribution: attribution(d),
	}

	docs := make([]Document, len(Styles))
	var g errgroup.Group
	for i, style := range Styles {
		g.Go(func() error {
			docs[i] = Render(in, style)
			return nil
		})
	}
	g.Wait() // renderers never error

	out := make(map[Style]Document, len(Styles))
	for i, style := range Styles {
		out[style] = docs[i]
	}
	return out
}

// Marshal encodes a document as indented JSON. Struct-only documents keep
// field order fixed, so output is byte-stable.
func Marshal(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", doc.DocStyle(), err)
	}
	return b, nil
}

// attribution describes where the numbers came from.
func attribution(d *signal.UnifiedDataset) string {
	return fmt.Sprintf("Synthesized from %d messages, %d incidents, %d calendar events, %d tickets",
		len(d.Emails), len(d.Incidents), len(d.Events), len(d.Tickets))
}
