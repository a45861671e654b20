package headless

import (
	"fmt"

	shard "github.com/grindlemire/go-shard"
)

// ScrollDirection is the axis a scroll view pans along.
type ScrollDirection int

const (
	ScrollVertical ScrollDirection = iota
	ScrollHorizontal
)

// Scroll renders its content prop, a complete descriptor, into a nested Root
// built with the same factory and context.
type Scroll struct {
	Direction    ScrollDirection
	ContentInset float32

	ctx     *Context
	factory *Factory
	content *shard.Root
}

func newScroll(ctx *Context, f *Factory) Impl {
	return &Scroll{ctx: ctx, factory: f}
}

func (s *Scroll) SetProp(key string, value shard.PropValue) error {
	switch key {
	case "direction":
		d, _ := decodeString(value)
		if d == "horizontal" {
			s.Direction = ScrollHorizontal
		} else {
			s.Direction = ScrollVertical
		}
	case "content-inset":
		s.ContentInset = parseLength(value)
	case "content":
		s.release()
		if value.IsNull() {
			return nil
		}
		root, err := shard.Render(s.factory, s.ctx, value.String(), shard.WithLogger(s.factory.log.Named("scroll")))
		if err != nil {
			return fmt.Errorf("content: %w", err)
		}
		s.content = root
	}
	return nil
}

// Measure lays the content out with the scroll axis unconstrained and
// reports the content size on any axis the constraints leave open.
func (s *Scroll) Measure(c shard.Constraints) (shard.Size, error) {
	if s.content == nil {
		return orZero(c), nil
	}

	inner := c
	if s.Direction == ScrollVertical {
		inner.Height = shard.Unconstrained().Height
	} else {
		inner.Width = shard.Unconstrained().Width
	}
	if err := s.content.Measure(inner); err != nil {
		return shard.Size{}, err
	}

	size := s.content.Size()
	if s.Direction == ScrollVertical {
		size.Height += 2 * s.ContentInset
	} else {
		size.Width += 2 * s.ContentInset
	}
	return shard.Size{Width: c.WidthOr(size.Width), Height: c.HeightOr(size.Height)}, nil
}

// Content returns the nested Root, or nil without content.
func (s *Scroll) Content() *shard.Root {
	return s.content
}

func (s *Scroll) release() {
	if s.content != nil {
		s.content.Release()
		s.content = nil
	}
}
