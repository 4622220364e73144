// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger      logrus.FieldLogger
		OpenMarker  rune
		CloseMarker rune
		Debug       bool
	}
)

const (
	// DefaultOpenMarker a `rune` indicating the start of a node.
	DefaultOpenMarker = '('

	// DefaultCloseMarker a `rune` indicating the end of a node's children.
	DefaultCloseMarker = ')'

	emptyRune rune = 0
)

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		OpenMarker:  DefaultOpenMarker,
		CloseMarker: DefaultCloseMarker,
		Logger:      logrus.New(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.OpenMarker == emptyRune {
		c.OpenMarker = DefaultOpenMarker
	}
	if c.CloseMarker == emptyRune {
		c.CloseMarker = DefaultCloseMarker
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
