package headless

import (
	shard "github.com/grindlemire/go-shard"
)

// Built-in kinds.
const (
	KindFlexbox    = "flexbox"
	KindText       = "text"
	KindImage      = "image"
	KindSolidColor = "solid-color"
	KindScroll     = "scroll"
)

// orZero fills unconstrained axes with zero.
func orZero(c shard.Constraints) shard.Size {
	return shard.Size{Width: c.WidthOr(0), Height: c.HeightOr(0)}
}

// Flexbox is a plain container. Its size comes from layout; measured alone it
// has no content.
type Flexbox struct {
	children int
}

func newFlexbox(*Context, *Factory) Impl {
	return &Flexbox{}
}

func (f *Flexbox) SetProp(string, shard.PropValue) error {
	return nil
}

func (f *Flexbox) Measure(c shard.Constraints) (shard.Size, error) {
	return orZero(c), nil
}

func (f *Flexbox) addChild(*View) error {
	f.children++
	return nil
}

// ContentMode says how an image fills its frame.
type ContentMode int

const (
	ContentCenter ContentMode = iota
	ContentCover
	ContentContain
)

// Image shows a remote image. Headless views never fetch; the intrinsic size
// comes from the image-size prop when the descriptor knows it.
type Image struct {
	Src         string
	ContentMode ContentMode
	Size        shard.Size
}

func newImage(*Context, *Factory) Impl {
	return &Image{}
}

func (i *Image) SetProp(key string, value shard.PropValue) error {
	switch key {
	case "src":
		i.Src, _ = decodeString(value)
	case "content-mode":
		s, _ := decodeString(value)
		switch s {
		case "cover":
			i.ContentMode = ContentCover
		case "contain":
			i.ContentMode = ContentContain
		default:
			i.ContentMode = ContentCenter
		}
	case "image-size":
		var size struct {
			Width  float32 `json:"width"`
			Height float32 `json:"height"`
		}
		if err := value.Decode(&size); err != nil {
			i.Size = shard.Size{}
			return nil
		}
		i.Size = shard.Size{Width: size.Width, Height: size.Height}
	}
	return nil
}

func (i *Image) Measure(c shard.Constraints) (shard.Size, error) {
	return shard.Size{Width: c.WidthOr(i.Size.Width), Height: c.HeightOr(i.Size.Height)}, nil
}

// SolidColor fills its frame with one color.
type SolidColor struct {
	Color Color
}

func newSolidColor(*Context, *Factory) Impl {
	return &SolidColor{}
}

func (s *SolidColor) SetProp(key string, value shard.PropValue) error {
	if key != "color" {
		return nil
	}
	c, err := parseColorProp(value)
	if err != nil {
		return err
	}
	s.Color = c
	return nil
}

func (s *SolidColor) Measure(c shard.Constraints) (shard.Size, error) {
	return orZero(c), nil
}
