package main

import (
	"flag"
	"fmt"
	"os"
)

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	style := fs.String("style", "", "Filter by style")
	limit := fs.Int("limit", 20, "Max briefs to list")
	show := fs.String("show", "", "Print the stored document for a brief id")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	st := openDB(cfg)
	defer st.Close()

	if *show != "" {
		briefs, err := st.RecentBriefs("", 1000)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
			os.Exit(1)
		}
		for _, b := range briefs {
			if b.ID == *show {
				fmt.Println(string(b.Document))
				return
			}
		}
		fmt.Fprintf(os.Stderr, "history: no brief with id %q\n", *show)
		os.Exit(1)
	}

	briefs, err := st.RecentBriefs(*style, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		os.Exit(1)
	}
	if len(briefs) == 0 {
		fmt.Println("No briefs in history. Run 'brief generate -save' first.")
		return
	}

	for _, b := range briefs {
		fmt.Printf("%-45s %-22s %-8s %s\n",
			b.ID, b.Style, b.Urgency, b.GeneratedAt.Format("2006-01-02 15:04"))
	}
}
