package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matheuskafuri/verse/internal/verse"
	"github.com/mmcdole/gofeed"
)

// AtomSource reads the first entry of an Atom verse-of-the-day feed.
type AtomSource struct {
	url    string
	parser *gofeed.Parser
}

func NewAtomSource(url string, client *http.Client) *AtomSource {
	p := gofeed.NewParser()
	if client != nil {
		p.Client = client
	}
	return &AtomSource{url: url, parser: p}
}

func (s *AtomSource) Fetch(ctx context.Context) (verse.Record, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return verse.Record{}, fmt.Errorf("fetching atom feed: %w", err)
	}
	if len(feed.Items) == 0 {
		return verse.Record{}, errors.New("atom feed has no entries")
	}

	item := feed.Items[0]
	body := item.Content
	if body == "" {
		body = item.Description
	}
	return verse.Record{
		Reference: strings.TrimSpace(item.Title),
		Body:      verse.PlainText(body),
	}, nil
}
