package source

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/abelbrown/brief/internal/signal"
)

// fetchTimeout bounds one feed fetch.
const fetchTimeout = 30 * time.Second

// feedRate limits polls per feed. One request per 30s with a small burst is
// plenty for a report generator and keeps us a good citizen.
var feedRate = rate.Every(30 * time.Second)

// RSS is a MessageSource backed by an RSS/Atom feed. Each entry becomes a
// normalized email record: the feed is the sender, the entry is the message.
type RSS struct {
	name    string
	url     string
	client  *http.Client
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

// NewRSS creates an RSS message source.
func NewRSS(name, url string) *RSS {
	return &RSS{
		name:    name,
		url:     url,
		client:  &http.Client{Timeout: fetchTimeout},
		parser:  gofeed.NewParser(),
		limiter: rate.NewLimiter(feedRate, 2),
	}
}

func (s *RSS) Name() string { return s.name }

// Messages fetches and normalizes the feed. Respects context cancellation.
func (s *RSS) Messages(ctx context.Context) ([]signal.Email, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "brief/0.1 (+https://github.com/abelbrown/brief)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	now := time.Now()
	emails := make([]signal.Email, 0, len(feed.Items))
	for _, entry := range feed.Items {
		// Stable id from the entry link so refetches dedupe cleanly
		id := fmt.Sprintf("%x", sha256.Sum256([]byte(entry.Link)))[:16]

		ts := now
		if entry.PublishedParsed != nil {
			ts = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			ts = *entry.UpdatedParsed
		}

		sender := s.name
		if entry.Author != nil && entry.Author.Name != "" {
			sender = entry.Author.Name
		}

		body := entry.Description
		if body == "" {
			body = entry.Content
		}

		emails = append(emails, signal.Email{
			ID:        id,
			Subject:   entry.Title,
			Body:      body,
			Sender:    sender,
			Timestamp: ts,
			Labels:    []string{"feed:" + s.name},
		})
	}

	return emails, nil
}
