package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB value laid out as 0xRRGGBB.
type Color uint32

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseColor accepts "#rrggbb", "#rgb", "0xrrggbb" and bare hex digits.
func ParseColor(value string) (Color, error) {
	s := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(s, "#"):
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = "#" + s[2:]
	default:
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return RGB(c.RGB255()), nil
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var number uint32
	if err := json.Unmarshal(data, &number); err == nil {
		*c = Color(number & 0xffffff)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("color must be a number or a hex string: %w", err)
	}
	parsed, err := ParseColor(text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
