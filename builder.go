// SPDX-License-Identifier: MIT
package katas

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/katas/types"
)

type (
	// Builder defines an interface for entities that can be read into a Tree.
	Builder[T Constraint] interface {
		// Value obtains the value stored by the Builder.
		Value() T
		// Parent obtains the parent stored by the Builder; ignored for the root.
		Parent() T
		// Side obtains the child slot of the parent to fill, SideRoot for the root.
		Side() Side
	}

	// BuildSource is a wrapper type for []Builder used to generate the Tree.
	BuildSource[T Constraint] struct {
		debug  bool
		logger logrus.FieldLogger

		list      []Builder[T]
		isOrdered bool
	}

	// DefaultBuilder is a sample Builder interface implementation.
	DefaultBuilder[T Constraint] struct {
		value  T
		parent T
		side   Side
	}

	// BuildOption defines the BuildSource functional option type.
	BuildOption[T Constraint] func(*BuildSource[T])
)

// Tree building errors.
var (
	ErrBuildTree = errors.New("failed to build tree")

	ErrMissingRootNode   = errors.New("missing root node")
	ErrMultipleRootNodes = errors.New("tree has multiple root nodes")
	ErrDuplicateValue    = errors.New("value occurs more than once")

	ErrEmptyTreeSrc   = fmt.Errorf("empty tree source: %w", types.ErrInvalidArgument)
	ErrInvalidTreeSrc = fmt.Errorf("invalid tree source: %w", types.ErrInvalidArgument)

	ErrLocateParents = errors.New("unable to locate parents(s)")

	ErrPanicked = errors.New("recovery from panic")
)

// NewDefaultBuilder instantiates a DefaultBuilder placing value in the side slot of parent.
func NewDefaultBuilder[T Constraint](value, parent T, side Side) *DefaultBuilder[T] {
	return &DefaultBuilder[T]{value: value, parent: parent, side: side}
}

// Value obtains the value stored by the DefaultBuilder.
func (d *DefaultBuilder[T]) Value() T { return d.value }

// Parent obtains the parent stored by the DefaultBuilder
func (d *DefaultBuilder[T]) Parent() T { return d.parent }

// Side obtains the child slot stored by the DefaultBuilder.
func (d *DefaultBuilder[T]) Side() Side { return d.side }

// NewBuildSource instantiates a BuildSource.
func NewBuildSource[T Constraint](options ...BuildOption[T]) *BuildSource[T] {
	b := &BuildSource[T]{
		list:   []Builder[T]{},
		logger: defConfig.Logger,
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// WithBuilders configures the underlying list.
func WithBuilders[T Constraint](list ...Builder[T]) BuildOption[T] {
	return func(b *BuildSource[T]) { b.list = list }
}

// WithBuildLogger configures the logger option.
func WithBuildLogger[T Constraint](logger logrus.FieldLogger) BuildOption[T] {
	return func(b *BuildSource[T]) { b.logger = logger }
}

// WithDebug configures the debug option
func WithDebug[T Constraint](debug bool) BuildOption[T] {
	return func(b *BuildSource[T]) { b.debug = debug }
}

// WithOrdered declares that every Builder follows its parent's, allowing a single pass.
func WithOrdered[T Constraint]() BuildOption[T] {
	return func(b *BuildSource[T]) { b.isOrdered = true }
}

// Len retrieves the length of the BuildSource.
func (b *BuildSource[T]) Len() int { return len(b.list) }

// Cut a value at some index from the BuildSource.
func (b *BuildSource[T]) Cut(index int) {
	if index == 0 {
		b.list = b.list[1:]
		return
	}

	upper := index + 1
	// Cut upto (excluding) `index`, cut from (including) `index+1`.
	b.list = append(b.list[:index], b.list[upper:]...)
}

// Build generates a Tree from the BuildSource, consuming it.
//
// Values identify parents, so each must be unique. On failure the remaining source holds the
// Builders that could not be placed.
func (b *BuildSource[T]) Build(ctx context.Context, options ...Option[T]) (t *Tree[T], err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBuildTree, err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			// Skip expensive operation if not debug.
			if b.debug {
				b.logger.Debugf("current tree: %s \nsource remnants: %s", spew.Sprint(t), spew.Sprint(b.list))
			}

			err = fmt.Errorf("%w: %w", ErrInvalidTreeSrc, err)
		}
	}()

	if b.Len() < 1 {
		err = ErrEmptyTreeSrc
		return
	}

	t = New(append([]Option[T]{WithCapacity[T](b.Len())}, options...)...)
	cache := make(map[T]NodeID, b.Len())

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		rootIndex := 0
		for index := range b.list {
			if b.list[index].Side() != SideRoot {
				continue
			}

			// Disallow additional root node(s).
			if !t.Empty() {
				err = fmt.Errorf("%w: (%v)", ErrMultipleRootNodes, b.list[index].Value())
				return
			}
			value := b.list[index].Value()
			cache[value], _ = t.SetRoot(value)

			rootIndex = index
		}
		if t.Empty() {
			err = ErrMissingRootNode
			return
		}

		// Remove the root node from the build source.
		prevLen := b.Len()
		if b.debug {
			b.logger.Debugf("source: %s", spew.Sprint(b.list))
		}
		b.Cut(rootIndex)

		for {
			lenSrc := b.Len()
			if lenSrc < 1 {
				return
			}

			if lenSrc == prevLen {
				err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(b.list))
				return
			}
			prevLen = lenSrc

			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			default:
			}

			for index := 0; index < lenSrc; index++ {
				builder := b.list[index]

				// Parent not in tree.
				parent, ok := cache[builder.Parent()]
				if !ok {
					continue
				}

				value := builder.Value()
				if _, ok = cache[value]; ok {
					err = fmt.Errorf("%w: (%v)", ErrDuplicateValue, value)
					return
				}

				var child NodeID
				switch side := builder.Side(); side {
				case SideLeft:
					child, err = t.AddLeft(parent, value)
				case SideRight:
					child, err = t.AddRight(parent, value)
				default:
					err = fmt.Errorf("%w: %d for (%v)", ErrInvalidSide, side, value)
				}
				if err != nil {
					return
				}
				cache[value] = child

				// Remove added node from the build source.
				b.Cut(index)

				// Allow for unordered Sources.
				//
				// Adds extraneous opcodes compared to the ordered Source's operation.
				if !b.isOrdered {
					break
				}

				index--
				lenSrc--
			}
		}
	}
}
