// Package types contains the shared vocabulary of cubescan: sticker colours,
// face identities and move notation.
package types

import (
	"fmt"
	"strings"
)

// Color is a sticker colour label.
type Color byte

const (
	Unknown Color = 0 // Not classified
	White   Color = 1 // Up face when solved
	Yellow  Color = 2 // Down face when solved
	Green   Color = 3 // Front face when solved
	Blue    Color = 4 // Back face when solved
	Red     Color = 5 // Right face when solved
	Orange  Color = 6 // Left face when solved
)

// Colors lists the six sticker colours, excluding Unknown.
var Colors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

// String returns the single-letter overlay label.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lowercase colour name used by the persisted state layout.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the six sticker colours.
func (c Color) Valid() bool {
	return c >= White && c <= Orange
}

// ParseColor parses a lowercase colour name or a single overlay letter.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	case "red", "r":
		return Red, nil
	case "orange", "o":
		return Orange, nil
	case "unknown", "?":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("types: unknown colour %q", s)
}

// MarshalText encodes the colour by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// UnmarshalText decodes a colour name.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
