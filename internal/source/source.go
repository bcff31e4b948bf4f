// Package source assembles UnifiedDatasets for the brief engine.
//
// The engine only ever sees normalized records; this package is where the
// outside world gets normalized. The primary input path is a dataset JSON
// file produced by upstream exporters. Live message feeds can be folded in
// on top. Each external capability sits behind one interface, selected via
// configuration, so there is exactly one implementation per capability.
package source

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/brief/internal/logging"
	"github.com/abelbrown/brief/internal/signal"
)

// MessageSource produces normalized email records from somewhere external.
type MessageSource interface {
	// Name returns a human-readable source name.
	Name() string

	// Messages retrieves the latest messages. Respects ctx cancellation.
	Messages(ctx context.Context) ([]signal.Email, error)
}

// Collect folds live message sources into a base dataset. Sources are
// fetched in parallel; a failing source is logged and skipped rather than
// failing the whole dataset, because the engine must only ever see
// "present data" or "empty data".
func Collect(ctx context.Context, base *signal.UnifiedDataset, sources []MessageSource, now time.Time) *signal.UnifiedDataset {
	out := &signal.UnifiedDataset{
		Emails:    append([]signal.Email(nil), base.Emails...),
		Incidents: append([]signal.Incident(nil), base.Incidents...),
		Events:    append([]signal.CalendarEvent(nil), base.Events...),
		Tickets:   append([]signal.Ticket(nil), base.Tickets...),
		FetchedAt: now,
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, src := range sources {
		g.Go(func() error {
			msgs, err := src.Messages(ctx)
			if err != nil {
				logging.Warn("message source failed", "source", src.Name(), "error", err)
				return nil
			}
			mu.Lock()
			out.Emails = append(out.Emails, msgs...)
			mu.Unlock()
			logging.Debug("message source fetched", "source", src.Name(), "count", len(msgs))
			return nil
		})
	}
	g.Wait()

	out.Emails = dedupeEmails(out.Emails)
	return out
}

// dedupeEmails drops messages whose id was already seen, preserving the
// dataset invariant when a feed overlaps the base file.
func dedupeEmails(emails []signal.Email) []signal.Email {
	seen := make(map[string]bool, len(emails))
	out := emails[:0]
	for _, e := range emails {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

// Describe summarizes a dataset for logs and status lines.
func Describe(d *signal.UnifiedDataset) string {
	return fmt.Sprintf("%d emails, %d incidents, %d events, %d tickets",
		len(d.Emails), len(d.Incidents), len(d.Events), len(d.Tickets))
}
