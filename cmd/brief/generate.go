package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/config"
	"github.com/abelbrown/brief/internal/logging"
	"github.com/abelbrown/brief/internal/render"
	"github.com/abelbrown/brief/internal/signal"
	"github.com/abelbrown/brief/internal/store"
)

func runGenerate() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	data := fs.String("data", "", "Dataset JSON file ('-' for stdin; default from config)")
	styleFlag := fs.String("style", "", "Style: mission_brief, startup_velocity, management_consulting, newsletter")
	all := fs.Bool("all", false, "Render all four styles")
	save := fs.Bool("save", false, "Also save to the local history database")
	nowFlag := fs.String("now", "", "Fixed generation timestamp (RFC3339) for reproducible output")
	fs.Parse(os.Args[1:])

	if err := logging.Init(); err != nil {
		log.Fatalf("failed to init logging: %v", err)
	}
	defer logging.Close()

	cfg := loadConfig()
	dataset := loadDataset(*data, cfg)
	now := parseNow(*nowFlag)

	styleName := *styleFlag
	if styleName == "" {
		styleName = cfg.DefaultStyle
	}
	style := render.ParseStyle(styleName)

	if *all {
		docs := render.GenerateAll(dataset, now)
		for _, s := range render.Styles {
			out, err := render.Marshal(docs[s])
			if err != nil {
				log.Fatalf("failed to marshal %s: %v", s, err)
			}
			fmt.Println(string(out))
			if *save {
				saveBrief(cfg, dataset, docs[s], out, now)
			}
		}
		return
	}

	doc := render.Generate(dataset, style, now)
	out, err := render.Marshal(doc)
	if err != nil {
		log.Fatalf("failed to marshal document: %v", err)
	}
	fmt.Println(string(out))

	if *save {
		saveBrief(cfg, dataset, doc, out, now)
	}
}

// saveBrief persists one rendered document to the history database.
func saveBrief(cfg *config.Config, dataset *signal.UnifiedDataset, doc render.Document, raw []byte, now time.Time) {
	if !cfg.History.Enabled {
		logging.Warn("history disabled in config; not saving")
		return
	}
	st := openDB(cfg)
	defer st.Close()

	subject, _ := render.Headline(doc)
	ctx := classify.Classify(dataset, now)
	b := store.Brief{
		ID:          fmt.Sprintf("%s-%s", doc.DocStyle(), now.UTC().Format("20060102T150405Z")),
		Style:       string(doc.DocStyle()),
		Urgency:     string(ctx.Urgency),
		Subject:     subject,
		GeneratedAt: now,
		Document:    raw,
	}
	if err := st.SaveBrief(b); err != nil {
		log.Fatalf("failed to save brief: %v", err)
	}
	if cfg.History.Keep > 0 {
		if err := st.Prune(cfg.History.Keep); err != nil {
			logging.Warn("failed to prune history", "error", err)
		}
	}
	logging.Info("brief saved", "id", b.ID, "style", b.Style, "urgency", b.Urgency)
}
