package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/logging"
	"github.com/abelbrown/brief/internal/render"
	"github.com/abelbrown/brief/internal/store"
	"github.com/abelbrown/brief/internal/ui"
)

func runView() {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	data := fs.String("data", "", "Dataset JSON file (default from config)")
	fs.Parse(os.Args[1:])

	if err := logging.Init(); err != nil {
		log.Fatalf("failed to init logging: %v", err)
	}
	defer logging.Close()

	cfg := loadConfig()
	dataset := loadDataset(*data, cfg)

	// One clock per session so switching styles re-presents the same brief
	// instead of regenerating against a moving "now".
	now := time.Now()

	generate := func(style render.Style) tea.Cmd {
		return func() tea.Msg {
			doc := render.Generate(dataset, style, now)
			raw, err := render.Marshal(doc)
			if err != nil {
				return ui.BriefLoaded{Style: style, Err: err}
			}
			ctx := classify.Classify(dataset, now)
			return ui.BriefLoaded{
				Style:   style,
				Doc:     doc,
				JSON:    raw,
				Urgency: string(ctx.Urgency),
			}
		}
	}

	var save func(render.Document, []byte) tea.Cmd
	if cfg.History.Enabled {
		save = func(doc render.Document, raw []byte) tea.Cmd {
			return func() tea.Msg {
				st, err := store.Open(cfg.DBPath())
				if err != nil {
					return ui.BriefSaved{Err: err}
				}
				defer st.Close()

				subject, _ := render.Headline(doc)
				ctx := classify.Classify(dataset, now)
				err = st.SaveBrief(store.Brief{
					ID:          fmt.Sprintf("%s-%s", doc.DocStyle(), now.UTC().Format("20060102T150405Z")),
					Style:       string(doc.DocStyle()),
					Urgency:     string(ctx.Urgency),
					Subject:     subject,
					GeneratedAt: now,
					Document:    raw,
				})
				return ui.BriefSaved{Err: err}
			}
		}
	}

	app := ui.NewApp(generate, save)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
