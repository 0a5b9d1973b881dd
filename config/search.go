package config

import "time"

// DefaultSearchDebounce is the quiet period before a search is sent upstream.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchConfig controls the shoe search pipeline.
type SearchConfig struct {
	Debounce time.Duration `env:"DEBOUNCE" envDefault:"300ms"`
}

// Sanitize restores the default window for non-positive values.
func (c *SearchConfig) Sanitize() {
	if c.Debounce <= 0 {
		c.Debounce = DefaultSearchDebounce
	}
}
