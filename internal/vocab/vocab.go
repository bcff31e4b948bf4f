// Package vocab holds the named keyword tables the detection heuristics run
// against. Keeping them here, versioned, means theme detection and insight
// extraction can be tuned without touching any ranking or rendering code.
package vocab

import "strings"

// Version identifies the keyword table revision in effect.
const Version = "2025-08"

// Churn flags messages that smell like customer escalation or churn risk.
var Churn = []string{
	"cancel",
	"churn",
	"escalate",
	"escalation",
	"frustrated",
	"disappointed",
	"unacceptable",
	"refund",
	"switching to",
	"competitor",
}

// Support flags routine customer support and product-issue traffic.
var Support = []string{
	"support",
	"issue",
	"problem",
	"bug",
	"error",
	"broken",
	"not working",
	"help",
}

// Opportunity flags inbound growth signals.
var Opportunity = []string{
	"opportunity",
	"partnership",
	"proposal",
	"contract",
	"deal",
	"expansion",
	"upsell",
	"interested in",
	"pilot",
}

// Executive marks meetings that involve leadership or investors.
// Checked against event titles, highest precedence in type classification.
var Executive = []string{"board", "executive", "ceo", "investor"}

// Review, Launch and Deadline classify the remaining event types, in that
// precedence order. Anything unmatched is a plain meeting.
var (
	Review   = []string{"review", "retrospective"}
	Launch   = []string{"launch", "deploy", "release"}
	Deadline = []string{"deadline", "due"}
)

// Topics is the fixed vocabulary scanned for topic-frequency insights.
var Topics = []string{
	"launch",
	"outage",
	"security",
	"revenue",
	"budget",
	"hiring",
	"roadmap",
	"customer",
	"contract",
	"partnership",
	"migration",
	"performance",
	"deadline",
	"incident",
	"renewal",
}

// MatchAny reports whether text contains any keyword, case-insensitively.
// Plain substring semantics: "escalate" matches "escalated".
func MatchAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
