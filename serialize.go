// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/fisherprime/katas/lexer"
	"gitlab.com/fisherprime/katas/types"
)

// Serialize transforms a [Tree] into its parenthesized notation, e.g. `(1 (2 (4) (5)) (3))`.
//
// Values are JSON encoded. A node lacking a left child but having a right one writes `()` for the
// empty slot; an empty [Tree] serializes to `()`. A nil cfg uses lexer.DefaultConfig; cfg is not
// modified.
func (t *Tree[T]) Serialize(ctx context.Context, cfg *lexer.Config) (output string, err error) {
	c := lexer.DefaultConfig()
	if cfg != nil {
		copied := *cfg
		c = &copied
	}
	c.Validate()

	open, closing := string(c.OpenMarker), string(c.CloseMarker)
	if t.root == Nil {
		return open + closing, nil
	}

	// Frames either write a literal token or open a node.
	type frame struct {
		id    NodeID
		token string
	}

	var buffer strings.Builder
	stack := types.Stack[frame]{{id: t.root}}
	for !stack.Empty() {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		top, _ := stack.Pop()
		if top.id == Nil {
			buffer.WriteString(top.token)
			continue
		}

		n := &t.nodes[top.id]
		var value []byte
		if value, err = json.Marshal(n.value); err != nil {
			err = fmt.Errorf("serializing (%v): %w", n.value, err)
			return
		}
		buffer.WriteString(open)
		buffer.Write(value)

		// Pushed in reverse of the writing order.
		stack.Push(frame{id: Nil, token: closing})
		if n.right != Nil {
			stack.Push(frame{id: n.right}, frame{id: Nil, token: " "})
		}
		switch {
		case n.left != Nil:
			stack.Push(frame{id: n.left}, frame{id: Nil, token: " "})
		case n.right != Nil:
			stack.Push(frame{id: Nil, token: " " + open + closing})
		}
	}

	output = buffer.String()
	if t.cfg.Debug {
		t.cfg.Logger.Debugf("serialized: %s", output)
	}

	return
}
