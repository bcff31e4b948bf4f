package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/brief/internal/brief"
	"github.com/abelbrown/brief/internal/classify"
	"github.com/abelbrown/brief/internal/insight"
	"github.com/abelbrown/brief/internal/source"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	data := fs.String("data", "", "Dataset JSON file (default from config)")
	nowFlag := fs.String("now", "", "Fixed timestamp (RFC3339)")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	dataset := loadDataset(*data, cfg)
	now := parseNow(*nowFlag)

	// --- Pipeline statistics ---

	fmt.Printf("Dataset:              %s\n", source.Describe(dataset))

	ctx := classify.Classify(dataset, now)
	fmt.Printf("Urgency:              %s\n", ctx.Urgency)
	fmt.Printf("Active incidents:     %v\n", ctx.HasActiveIncidents)
	fmt.Printf("Critical issues:      %d\n", ctx.CriticalIssueCount)
	fmt.Printf("Revenue at risk:      $%.0f\n", ctx.TotalRevenueAtRisk)
	fmt.Printf("Messages (24h):       %d\n", ctx.RecentMessages)
	fmt.Printf("Stakeholders:         %v\n", ctx.Stakeholders)

	m := brief.Build(dataset, now)
	fmt.Printf("\nThemes (%d):\n", len(m.KeyThemes))
	for _, th := range m.KeyThemes {
		fmt.Printf("  %-24s %s\n", th.Title, th.Description)
	}

	fmt.Printf("\nAction items (%d):\n", len(m.ActionItems))
	for i, it := range m.ActionItems {
		fmt.Printf("  %2d. [%-6s] %s (%s)\n", i+1, it.Priority, it.Title, it.Owner)
	}

	fmt.Printf("\nMetrics (%d):\n", len(m.Metrics))
	for _, mt := range m.Metrics {
		fmt.Printf("  %-20s %s\n", mt.Name, mt.Value)
	}

	fmt.Printf("\nUpcoming events (%d):\n", len(m.Upcoming))
	for _, ev := range m.Upcoming {
		fmt.Printf("  %s\n", ev.Title)
	}

	ins := insight.Extract(dataset, now)
	fmt.Printf("\nComm trend:           %s\n", ins.CommTrend)
	fmt.Printf("Momentum:             %s\n", ins.Momentum)
	fmt.Printf("Meetings today/tmrw:  %d / %d\n", ins.MeetingsToday, ins.MeetingsTomorrow)
	if len(ins.TopTopics) > 0 {
		fmt.Printf("Top topics:           ")
		for i, t := range ins.TopTopics {
			if i > 0 {
				fmt.Printf(", ")
			}
			fmt.Printf("%s(%d)", t.Word, t.Count)
		}
		fmt.Println()
	}
}
