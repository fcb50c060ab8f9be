// Package viz holds the registry of third-party visualization embeds shown
// next to the derived charts. Embeds are opaque to the data pipeline: the
// API only hands their URL, title and height to the front end.
package viz

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/url"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// DefaultHeight applies when an embed leaves height unset.
const DefaultHeight = 600

//go:embed embeds.toml
var defaultEmbeds []byte

// Embed is one hosted visualization.
type Embed struct {
	ID          string            `toml:"id" json:"id"`
	Tab         string            `toml:"tab" json:"tab"`
	Title       string            `toml:"title" json:"title,omitempty"`
	URL         string            `toml:"url" json:"url"`
	Height      int               `toml:"height" json:"height"`
	HideTabs    *bool             `toml:"hide_tabs" json:"hideTabs"`
	HideToolbar *bool             `toml:"hide_toolbar" json:"hideToolbar"`
	Filters     map[string]string `toml:"filters" json:"filters,omitempty"`
}

// Registry is the ordered list of embeds.
type Registry struct {
	Embeds []Embed `toml:"embed" json:"embeds"`
}

// Default returns the built-in registry.
func Default() *Registry {
	reg, err := Decode(bytes.NewReader(defaultEmbeds))
	if err != nil {
		panic(fmt.Sprintf("built-in embeds are invalid: %v", err))
	}
	return reg
}

// Load reads a registry from a TOML file. An empty path yields Default().
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeds file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates a TOML registry. Unknown keys are rejected.
func Decode(r io.Reader) (*Registry, error) {
	var reg Registry
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&reg); err != nil {
		return nil, fmt.Errorf("decode embeds: %w", err)
	}

	seen := make(map[string]bool, len(reg.Embeds))
	for i := range reg.Embeds {
		e := &reg.Embeds[i]
		if e.ID == "" || e.Tab == "" {
			return nil, fmt.Errorf("embed %d: id and tab are required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("embed %q: duplicate id", e.ID)
		}
		seen[e.ID] = true

		u, err := url.Parse(e.URL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return nil, fmt.Errorf("embed %q: url must be an absolute http(s) URL", e.ID)
		}
		if e.Height < 0 {
			return nil, fmt.Errorf("embed %q: height must not be negative", e.ID)
		}
		if e.Height == 0 {
			e.Height = DefaultHeight
		}
		if e.HideTabs == nil {
			e.HideTabs = boolPtr(true)
		}
		if e.HideToolbar == nil {
			e.HideToolbar = boolPtr(true)
		}
	}
	return &reg, nil
}

// ForTab returns the embeds of one tab in file order. An empty tab returns
// all embeds.
func (r *Registry) ForTab(tab string) []Embed {
	if tab == "" {
		return slices.Clone(r.Embeds)
	}
	out := make([]Embed, 0, len(r.Embeds))
	for _, e := range r.Embeds {
		if e.Tab == tab {
			out = append(out, e)
		}
	}
	return out
}

// Tabs lists the distinct tabs in first-seen order.
func (r *Registry) Tabs() []string {
	var tabs []string
	for _, e := range r.Embeds {
		if !slices.Contains(tabs, e.Tab) {
			tabs = append(tabs, e.Tab)
		}
	}
	return tabs
}

func boolPtr(b bool) *bool { return &b }
