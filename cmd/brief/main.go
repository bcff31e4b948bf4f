// Command brief generates and browses executive briefs.
//
// Usage:
//
//	brief                   Show help
//	brief generate          Render a brief from a dataset to stdout
//	brief view              Interactive TUI viewer
//	brief stats             Dataset and pipeline statistics
//	brief history           List briefs stored in the local history
package main

import (
	"fmt"
	"os"
)

const usage = `brief - executive signal synthesis

Usage:
  brief <command> [flags]

Commands:
  generate    Render a brief from a dataset JSON file to stdout
  view        Interactive TUI viewer (switch styles with 1-4)
  stats       Dataset and pipeline statistics
  history     List briefs stored in the local history

Files:
  ~/.brief/config.json    Configuration (sources, default style)
  ~/.brief/brief.db       Brief history (sqlite)
  ~/.brief/logs/          Daily log files

Run 'brief <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "generate":
		runGenerate()
	case "view":
		runView()
	case "stats":
		runStats()
	case "history":
		runHistory()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "brief: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
