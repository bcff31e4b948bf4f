// Package ui provides the Bubble Tea TUI for browsing briefs.
package ui

import "github.com/abelbrown/brief/internal/render"

// BriefLoaded is sent when a brief has been generated for a style.
type BriefLoaded struct {
	Style   render.Style
	Doc     render.Document
	JSON    []byte
	Urgency string // classifier urgency level, for the badge
	Err     error
}

// BriefSaved is sent when the current brief has been written to history.
type BriefSaved struct {
	Err error
}
