package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/matheuskafuri/verse/internal/verse"
	"github.com/tidwall/gjson"
)

const maxJSONBody = 1 << 20

// JSONSource reads verse.details.{reference,text} from a JSON endpoint.
type JSONSource struct {
	url    string
	client *http.Client
}

func NewJSONSource(url string, client *http.Client) *JSONSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &JSONSource{url: url, client: client}
}

func (s *JSONSource) Fetch(ctx context.Context) (verse.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return verse.Record{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return verse.Record{}, fmt.Errorf("fetching json: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return verse.Record{}, fmt.Errorf("fetching json: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONBody))
	if err != nil {
		return verse.Record{}, fmt.Errorf("reading json: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return verse.Record{}, errors.New("malformed json response")
	}

	details := gjson.GetBytes(data, "verse.details")
	if !details.Exists() {
		return verse.Record{}, errors.New("json response missing verse.details")
	}
	return verse.Record{
		Reference: strings.TrimSpace(details.Get("reference").String()),
		Body:      verse.PlainText(details.Get("text").String()),
	}, nil
}
