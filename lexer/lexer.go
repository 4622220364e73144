// SPDX-License-Identifier: MIT

// Package lexer tokenizes the parenthesized tree notation, e.g. `(1 (2 (4) (5)) (3))`.
//
// A node opens with an open marker followed by its value & up to two child nodes, then closes with
// a close marker; an open marker directly followed by a close marker is an empty child slot.
// Values are JSON scalars: numbers, booleans & double quoted strings. Items are emitted on a
// channel by state functions running in their own goroutine.
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go
// REF: https://dave.cheney.net/high-performance-json.html
// REF: []rune to []byte conversion. https://stackoverflow.com/a/29255836

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func(context.Context) NextOperation

	// ValidationFunction type for functions that validate rune identities
	ValidationFunction func(rune) bool

	// Lexer defines a type to capture tree notation tokens from a rune source.
	Lexer struct {
		Debug       bool
		openMarker  rune
		closeMarker rune
		logger      logrus.FieldLogger

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input source.
		source io.RuneReader

		// buffer is a slice of runes being lexed.
		buffer []rune
		//  bufferIndex is the current buffer position.
		//
		// When this value exceeds the length of buffer, the buffer is populated from the source.
		bufferIndex int

		// pos is the source position of buffer[0].
		pos int

		openCounter  int
		closeCounter int
		valueCounter int
	}
)

const (
	sourceLimit   = 512
	defBufferSize = 10

	quote  = '"'
	escape = '\\'
)

// Lexing errors.
var (
	ErrInvalidPeekLength   = errors.New("invalid peek length")
	ErrInvalidBackupAmount = errors.New("invalid backup amount")
	ErrUnknownTokens       = errors.New("unknown tokens")
	ErrUnterminatedString  = errors.New("unterminated string")
)

// Improves on performance compared to ORs.
//
// Reduces function cost improving probalility of inlining.
var (
	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	valueSymbols = [256]bool{
		'_': true,
		'-': true,
		'+': true,
		'.': true,
	}
)

// New creates a new scanner for the configured source.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		openMarker:  DefaultOpenMarker,
		closeMarker: DefaultCloseMarker,
		logger:      logrus.New(),

		c: make(chan Item, defBufferSize),

		buffer: make([]rune, 0, defBufferSize),
		source: strings.NewReader(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// OpenMarker obtains the configured open marker.
func (l *Lexer) OpenMarker() rune { return l.openMarker }

// CloseMarker obtains the configured close marker.
func (l *Lexer) CloseMarker() rune { return l.closeMarker }

// OpenCounter obtains the number of open markers lexed.
func (l *Lexer) OpenCounter() int { return l.openCounter }

// CloseCounter obtains the number of close markers lexed.
func (l *Lexer) CloseCounter() int { return l.closeCounter }

// ValueCounter obtains the number of values lexed.
func (l *Lexer) ValueCounter() int { return l.valueCounter }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex lexes the input by executing state functions.
//
// The Item channel is closed on return; a canceled context stops the lexer without draining.
func (l *Lexer) Lex(ctx context.Context) {
	// Close channel
	defer close(l.c)

	select {
	case <-ctx.Done():
		l.EmitError(ctx, ctx.Err())
	default:
		for stateFunction := l.LexWhitespace; stateFunction != nil; {
			stateFunction = stateFunction(ctx)
		}
	}
}

// LexWhitespace skips whitespace then dispatches on the next rune.
func (l *Lexer) LexWhitespace(ctx context.Context) NextOperation {
	if err := l.AcceptWhile(isWhitespace); err != nil {
		l.EmitError(ctx, err)
		return nil
	}
	// Ignore white spaces, discard instead of emit.
	l.Discard()

	next := l.Next()
	switch {
	case next == emptyRune:
		l.EmitEOF(ctx)
		return nil
	case next == l.openMarker:
		l.openCounter++
		return l.emitThen(ctx, ItemOpen, l.LexWhitespace)
	case next == l.closeMarker:
		l.closeCounter++
		return l.emitThen(ctx, ItemClose, l.LexWhitespace)
	case next == quote:
		return l.LexString
	case isValue(next):
		return l.LexValue
	default:
		if err := l.Backup(); err != nil {
			l.EmitError(ctx, err)
			return nil
		}

		nextRunes, err := l.PeekN(sourceLimit)
		if err != nil {
			l.EmitError(ctx, err)
			return nil
		}

		l.EmitError(ctx, fmt.Errorf("%w at (%d): %s", ErrUnknownTokens, l.pos, string(nextRunes)))

		return nil
	}
}

// LexValue captures a bare JSON scalar: a number, boolean or null.
func (l *Lexer) LexValue(ctx context.Context) NextOperation {
	err := l.AcceptWhile(isValue)
	if err != nil && !errors.Is(err, io.EOF) {
		l.EmitError(ctx, err)
		return nil
	}

	l.valueCounter++
	if !l.Emit(ctx, ItemValue) {
		return nil
	}
	if err != nil {
		// The value ended the input.
		l.EmitEOF(ctx)
		return nil
	}

	return l.LexWhitespace
}

// LexString captures a double quoted JSON string, quotes included.
func (l *Lexer) LexString(ctx context.Context) NextOperation {
	for {
		switch l.Next() {
		case emptyRune:
			l.EmitError(ctx, fmt.Errorf("%w at (%d)", ErrUnterminatedString, l.pos))
			return nil
		case escape:
			// Skip the escaped rune.
			if l.Next() == emptyRune {
				l.EmitError(ctx, fmt.Errorf("%w at (%d)", ErrUnterminatedString, l.pos))
				return nil
			}
		case quote:
			l.valueCounter++
			return l.emitThen(ctx, ItemValue, l.LexWhitespace)
		}
	}
}

func (l *Lexer) emitThen(ctx context.Context, t ItemID, next NextOperation) NextOperation {
	if !l.Emit(ctx, t) {
		return nil
	}

	return next
}

// Next return the Next rune in the input.
func (l *Lexer) Next() (r rune) {
	if l.bufferIndex >= len(l.buffer) {
		// Request data from the source.
		if l.Source(0) < 1 {
			r = emptyRune
			return
		}
	}

	r = l.buffer[l.bufferIndex]
	l.bufferIndex++

	return
}

// Peek return the next rune, without updating the index.
func (l *Lexer) Peek() (r rune, err error) {
	list, err := l.PeekN(1)
	if err != nil {
		return
	}
	r = list[0]

	return
}

// PeekN return the next N runes, without updating the index.
//
// This operation will return a shorter slice if the the end of the source is reached.
func (l *Lexer) PeekN(n int) (list []rune, err error) {
	if n < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidPeekLength, n)
		return
	}

	for len(l.buffer)-l.bufferIndex < n {
		// Request data from the source.
		if l.Source(n) < 1 {
			break
		}
	}

	limit := min(l.bufferIndex+n, len(l.buffer))
	if limit <= l.bufferIndex {
		err = io.EOF
		return
	}
	list = l.buffer[l.bufferIndex:limit]

	return
}

// Backup step back one rune.
func (l *Lexer) Backup() error { return l.BackupN(1) }

// BackupN step back N runes.
func (l *Lexer) BackupN(n int) (err error) {
	if l.bufferIndex < n {
		err = fmt.Errorf("%w: amount %d index: %d", ErrInvalidBackupAmount, n, l.bufferIndex)
		return
	}
	l.bufferIndex -= n

	return
}

// Discard the buffer content before the current buffer index.
func (l *Lexer) Discard() {
	l.pos += l.bufferIndex
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// Source runes from the source reader.
func (l *Lexer) Source(amount int) (sourced int) {
	if amount < defBufferSize {
		amount = defBufferSize
	}

	buffer := make([]rune, amount)
	for ; sourced < amount; sourced++ {
		// NOTE: Function cost reduced by swapping the error check's condition.
		if r, _, err := l.source.ReadRune(); err == nil {
			buffer[sourced] = r
			continue
		}

		// Error can only be io.EOF
		break
	}

	l.buffer = append(l.buffer, buffer[:sourced]...)

	return
}

// AcceptWhile consumes runes while condition is true.
//
// io.EOF is returned when the input ends first.
func (l *Lexer) AcceptWhile(fn ValidationFunction) (err error) {
	for {
		r := l.Next()
		if r == emptyRune {
			// End of input.
			return io.EOF
		}

		// End of current token type.
		if !fn(r) {
			// An error at this point should never occur; unless the Lexer is modified externally.
			return l.Backup()
		}
	}
}

// Emit sends an Item holding the runes consumed since the last Discard over the communication
// channel, reporting false on context cancellation.
func (l *Lexer) Emit(ctx context.Context, t ItemID) bool {
	runes := l.buffer[:l.bufferIndex]

	bufSize := 0
	for _, r := range runes {
		bufSize += utf8.RuneLen(r)
	}
	buf := make([]byte, bufSize)

	index := 0
	for _, r := range runes {
		index += utf8.EncodeRune(buf[index:], r)
	}

	if l.Debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debugf("lexer Emit %s: %s", t, string(buf))
	}

	item := Item{ID: t, Val: buf, Pos: l.pos}
	l.Discard()

	return l.send(ctx, item)
}

// EmitEOF sends an ItemEOF Item over the communication channel.
func (l *Lexer) EmitEOF(ctx context.Context) {
	l.send(ctx, Item{ID: ItemEOF, Pos: l.pos})
}

// EmitError sends an error over the `Lexer`'s channel.
//
// This terminates the scan process with an error or an ItemEOF for io.EOF.
func (l *Lexer) EmitError(ctx context.Context, err error) {
	if errors.Is(err, io.EOF) {
		l.EmitEOF(ctx)
		return
	}

	l.send(ctx, Item{ID: ItemError, Err: err, Pos: l.pos})
}

func (l *Lexer) send(ctx context.Context, item Item) bool {
	select {
	case <-ctx.Done():
		return false
	case l.c <- item:
		return true
	}
}

// Item return a lexed Item from the input.
//
// ok is false once the Lexer is done.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

// isWhitespace return true for whitespace, newline & carrier return.
func isWhitespace(r rune) bool { return r < 256 && whitespace[r] }

// isValue return true for runes of a bare JSON scalar.
func isValue(r rune) bool {
	return (r < 256 && valueSymbols[r]) || unicode.IsLetter(r) || unicode.IsDigit(r)
}
