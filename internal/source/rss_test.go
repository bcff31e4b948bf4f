package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Status Updates</title>
    <item>
      <title>Deploy window tonight</title>
      <link>https://example.com/posts/1</link>
      <description>Release 2.4 ships at 22:00 UTC</description>
      <author>carol@example.com (Carol)</author>
      <pubDate>Thu, 12 Jun 2025 07:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Incident follow-up</title>
      <link>https://example.com/posts/2</link>
      <description>Postmortem doc is up</description>
      <pubDate>Thu, 12 Jun 2025 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestRSSMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	src := NewRSS("status", srv.URL)
	msgs, err := src.Messages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}

	first := msgs[0]
	if first.Subject != "Deploy window tonight" {
		t.Errorf("unexpected subject %q", first.Subject)
	}
	if first.Sender != "Carol" {
		t.Errorf("entry author should be the sender, got %q", first.Sender)
	}
	if len(first.ID) != 16 {
		t.Errorf("expected a 16-char stable id, got %q", first.ID)
	}
	if len(first.Labels) != 1 || first.Labels[0] != "feed:status" {
		t.Errorf("expected feed label, got %v", first.Labels)
	}

	// No author on the second entry: the feed name stands in
	if msgs[1].Sender != "status" {
		t.Errorf("expected feed-name sender, got %q", msgs[1].Sender)
	}
}

func TestRSSErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewRSS("status", srv.URL).Messages(context.Background()); err == nil {
		t.Error("expected an error on HTTP 403")
	}
}

func TestRSSStableIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	src := NewRSS("status", srv.URL)
	a, err := src.Messages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := src.Messages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a[0].ID != b[0].ID {
		t.Error("refetching the same entry must produce the same id")
	}
}
