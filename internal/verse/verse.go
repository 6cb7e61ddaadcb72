package verse

import "strings"

// Provider tags identify which remote source answered a fetch.
const (
	ProviderPrimary  = "Primary"
	ProviderFallback = "Fallback"
)

// Record is one normalized verse of the day.
type Record struct {
	Reference string `json:"reference"`
	Body      string `json:"body"`
	Provider  string `json:"provider"`
}

// Valid reports whether both reference and body carry text.
func (r Record) Valid() bool {
	return strings.TrimSpace(r.Reference) != "" && strings.TrimSpace(r.Body) != ""
}

// ClipboardText is the single-line form used for --copy.
func (r Record) ClipboardText() string {
	return r.Reference + " – " + r.Body
}
