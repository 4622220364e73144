// SPDX-License-Identifier: MIT
package lexer

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

// WithConfig applies a Config, see Config.Validate.
func WithConfig(cfg *Config) Option {
	return func(l *Lexer) {
		cfg.Validate()

		l.Debug = cfg.Debug
		l.openMarker, l.closeMarker = cfg.OpenMarker, cfg.CloseMarker
		l.logger = cfg.Logger
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.Debug = debug } }

// WithMarkers configures the node open & close markers.
func WithMarkers(open, close rune) Option {
	return func(l *Lexer) { l.openMarker, l.closeMarker = open, close }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }
