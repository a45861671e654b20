package headless

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	shard "github.com/grindlemire/go-shard"
)

// MaxRadius is the border radius of "max": fully rounded.
const MaxRadius = math.MaxFloat32

// Color is an ARGB color with an optional pressed-state variant.
type Color struct {
	Default uint32
	Pressed *uint32
}

// Hex formats the default color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", c.Default&0xffffff)
}

// Alpha returns the alpha channel of the default color.
func (c Color) Alpha() uint8 {
	return uint8(c.Default >> 24)
}

// Action is the on-click payload.
type Action struct {
	Action string
	Value  shard.PropValue
}

// Base holds the props every kind understands.
type Base struct {
	BackgroundColor Color
	BorderColor     Color
	BorderRadius    float32
	BorderWidth     float32
	OnClick         *Action
}

func (b *Base) set(key string, value shard.PropValue) error {
	switch key {
	case "background-color":
		c, err := parseColorProp(value)
		if err != nil {
			return err
		}
		b.BackgroundColor = c
	case "border-color":
		c, err := parseColorProp(value)
		if err != nil {
			return err
		}
		b.BorderColor = Color{Default: c.Default}
	case "border-radius":
		if s, ok := decodeString(value); ok && s == "max" {
			b.BorderRadius = MaxRadius
			return nil
		}
		b.BorderRadius = parseLength(value)
	case "border-width":
		b.BorderWidth = parseLength(value)
	case "on-click":
		action, err := parseAction(value)
		if err != nil {
			return err
		}
		b.OnClick = action
	}
	return nil
}

// ParseColor parses #rgb, #rrggbb or #aarrggbb into ARGB. Colors without an
// alpha channel are opaque.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q must start with #", s)
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return 0, fmt.Errorf("color %q has %d hex digits", s, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}

// parseColorProp reads a color string or {"default": ..., "pressed": ...}.
// Null resets to transparent.
func parseColorProp(value shard.PropValue) (Color, error) {
	if value.IsNull() {
		return Color{}, nil
	}
	if s, ok := decodeString(value); ok {
		c, err := ParseColor(s)
		return Color{Default: c}, err
	}

	var obj struct {
		Default *string `json:"default"`
		Pressed *string `json:"pressed"`
	}
	if err := value.Decode(&obj); err != nil || obj.Default == nil {
		return Color{}, fmt.Errorf("color must be a string or an object with a default, got %s", value)
	}
	def, err := ParseColor(*obj.Default)
	if err != nil {
		return Color{}, err
	}
	c := Color{Default: def}
	if obj.Pressed != nil {
		pressed, err := ParseColor(*obj.Pressed)
		if err != nil {
			return Color{}, err
		}
		c.Pressed = &pressed
	}
	return c, nil
}

// parseLength reads {"unit": "points"|"pixels", "value": n}. Anything else
// is zero.
func parseLength(value shard.PropValue) float32 {
	var dim struct {
		Unit  string   `json:"unit"`
		Value *float32 `json:"value"`
	}
	if err := value.Decode(&dim); err != nil || dim.Value == nil {
		return 0
	}
	switch dim.Unit {
	case "points", "pixels":
		return *dim.Value
	default:
		return 0
	}
}

func parseAction(value shard.PropValue) (*Action, error) {
	if value.IsNull() {
		return nil, nil
	}
	var obj struct {
		Action *string         `json:"action"`
		Value  json.RawMessage `json:"value"`
	}
	if err := value.Decode(&obj); err != nil {
		return nil, fmt.Errorf("on-click must be an object: %w", err)
	}
	if obj.Action == nil {
		return nil, fmt.Errorf("on-click is missing a string action")
	}
	payload := "null"
	if len(obj.Value) > 0 {
		payload = string(obj.Value)
	}
	v, err := shard.ParsePropValue(payload)
	if err != nil {
		return nil, err
	}
	return &Action{Action: *obj.Action, Value: v}, nil
}

func decodeString(value shard.PropValue) (string, bool) {
	var s string
	if err := value.Decode(&s); err != nil {
		return "", false
	}
	return s, true
}

func decodeNumber(value shard.PropValue) (float32, bool) {
	var n float32
	if err := value.Decode(&n); err != nil {
		return 0, false
	}
	return n, true
}
