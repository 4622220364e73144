// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/katas/lexer"
)

// Deserialization errors.
var (
	ErrExcessiveValues     = errors.New("the deserialization source has excessive values")
	ErrExcessiveEndMarkers = errors.New("the deserialization source has excessive end markers")
	ErrMissingEndMarkers   = errors.New("the deserialization source is missing end markers")
	ErrUnexpectedItem      = errors.New("unexpected item")
)

// parser builds a Tree from the Items of a lexer.
type parser[T Constraint] struct {
	l *lexer.Lexer
	t *Tree[T]
}

// Deserialize transforms a serialized tree into a [Tree], see [Tree.Serialize].
//
// Values are decoded into T using JSON. The source is configured through lexer options, typically
// lexer.WithSource; the lexer's logger & debug options also configure the [Tree]. Malformed
// sources yield an error wrapping ErrInvalidTreeSrc; a blank source yields ErrEmptyTreeSrc.
func Deserialize[T Constraint](ctx context.Context, opts ...lexer.Option) (t *Tree[T], err error) {
	// Stops the lexer should parsing end early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := lexer.New(opts...)
	go l.Lex(ctx)

	// The Tree shares the lexer's logging.
	p := &parser[T]{l: l, t: New(WithConfig[T](&Config{Logger: l.Logger(), Debug: l.Debug}))}
	t = p.t

	defer func() {
		if err == nil || errors.Is(err, ErrEmptyTreeSrc) {
			return
		}

		// Skip expensive operation if not debug.
		if l.Debug {
			// The counters are final once the lexer closes its channel.
			cancel()
			for _, ok := l.Item(); ok; _, ok = l.Item() {
			}

			l.Logger().WithFields(logrus.Fields{
				"open":   l.OpenCounter(),
				"close":  l.CloseCounter(),
				"values": l.ValueCounter(),
			}).Debugf("partial tree: %s", spew.Sprint(t.InOrder()))
		}
		err = fmt.Errorf("%w: %w", ErrInvalidTreeSrc, err)
	}()

	item, err := p.next(ctx)
	if err != nil {
		return
	}
	switch item.ID {
	case lexer.ItemEOF:
		err = ErrEmptyTreeSrc
		return
	case lexer.ItemOpen:
	default:
		err = unexpected(item)
		return
	}

	if _, err = p.node(ctx, Nil, SideRoot); err != nil {
		return
	}

	if item, err = p.next(ctx); err != nil {
		return
	}
	switch item.ID {
	case lexer.ItemEOF:
	case lexer.ItemClose:
		err = fmt.Errorf("%w at (%d)", ErrExcessiveEndMarkers, item.Pos)
	case lexer.ItemOpen, lexer.ItemValue:
		err = fmt.Errorf("%w at (%d): a tree has one root", ErrExcessiveValues, item.Pos)
	default:
		err = unexpected(item)
	}
	if err != nil {
		return
	}

	if l.Debug {
		levels, _ := t.Levels(ctx)
		l.Logger().Debugf("tree: %+v", levels)
	}

	return
}

// next receives the next Item, converting error Items & cancellation into errors.
func (p *parser[T]) next(ctx context.Context) (item lexer.Item, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	item, ok := p.l.Item()
	switch {
	case !ok:
		err = fmt.Errorf("%w: input ended", ErrMissingEndMarkers)
	case item.ID == lexer.ItemError:
		err = item.Err
	}
	if p.l.Debug && err == nil {
		p.l.Logger().Debugf("lexed item: %s %s", item.ID, item.Val)
	}

	return
}

// node parses the remainder of a node whose open marker was consumed, adding it in the side slot
// of parent. An empty slot, `()`, yields Nil.
func (p *parser[T]) node(ctx context.Context, parent NodeID, side Side) (id NodeID, err error) {
	id = Nil

	item, err := p.next(ctx)
	if err != nil {
		return
	}
	switch item.ID {
	case lexer.ItemClose:
		return
	case lexer.ItemValue:
	case lexer.ItemEOF:
		err = fmt.Errorf("%w at (%d)", ErrMissingEndMarkers, item.Pos)
		return
	default:
		err = unexpected(item)
		return
	}

	var value T
	if err = json.Unmarshal(item.Val, &value); err != nil {
		err = fmt.Errorf("value %s at (%d): %w", item.Val, item.Pos, err)
		return
	}

	if parent == Nil {
		id, err = p.t.SetRoot(value)
	} else {
		id, err = p.t.add(parent, value, side)
	}
	if err != nil {
		return
	}

	for _, childSide := range [2]Side{SideLeft, SideRight} {
		if item, err = p.next(ctx); err != nil {
			return
		}

		switch item.ID {
		case lexer.ItemClose:
			return
		case lexer.ItemOpen:
			if _, err = p.node(ctx, id, childSide); err != nil {
				return
			}
		case lexer.ItemValue:
			err = fmt.Errorf("%w at (%d): children must be enclosed", ErrExcessiveValues, item.Pos)
			return
		case lexer.ItemEOF:
			err = fmt.Errorf("%w at (%d)", ErrMissingEndMarkers, item.Pos)
			return
		default:
			err = unexpected(item)
			return
		}
	}

	// Both child slots are consumed.
	if item, err = p.next(ctx); err != nil {
		return
	}
	switch item.ID {
	case lexer.ItemClose:
	case lexer.ItemOpen, lexer.ItemValue:
		err = fmt.Errorf("%w at (%d): a node has at most two children", ErrExcessiveValues, item.Pos)
	case lexer.ItemEOF:
		err = fmt.Errorf("%w at (%d)", ErrMissingEndMarkers, item.Pos)
	default:
		err = unexpected(item)
	}

	return
}

func unexpected(item lexer.Item) error {
	return fmt.Errorf("%w %s at (%d)", ErrUnexpectedItem, item.ID, item.Pos)
}
