package theme

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the handful of colours a front-end without a stylesheet engine
// can take from a style payload. Unset colours are nil.
type Palette struct {
	Background color.Color
	Foreground color.Color
	Accent     color.Color
}

var declaration = regexp.MustCompile(`(?i)(?:^|[\s;{])(background-color|background|color|accent-color|border-color)\s*:\s*([^;}]+)`)

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"gray":   "#808080",
	"grey":   "#808080",
	"purple": "#800080",
}

// ExtractPalette scans style for the first background, text and accent
// colour declarations it can read. Anything else in the payload is ignored.
func ExtractPalette(style string) Palette {
	var p Palette
	for _, m := range declaration.FindAllStringSubmatch(style, -1) {
		c, ok := parseColor(m[2])
		if !ok {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "background-color", "background":
			if p.Background == nil {
				p.Background = c
			}
		case "color":
			if p.Foreground == nil {
				p.Foreground = c
			}
		case "accent-color", "border-color":
			if p.Accent == nil {
				p.Accent = c
			}
		}
	}
	return p
}

// Empty reports whether no colour was found.
func (p Palette) Empty() bool {
	return p.Background == nil && p.Foreground == nil && p.Accent == nil
}

// Hex renders c as #rrggbb, or "" for nil.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// parseColor reads the first colour token of a declaration value:
// #rgb, #rrggbb, rgb()/rgba() or a basic colour name.
func parseColor(value string) (color.Color, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.TrimSuffix(value, "!important")
	value = strings.TrimSpace(value)

	switch {
	case strings.HasPrefix(value, "#"):
		token := strings.Fields(value)[0]
		if len(token) == 9 {
			token = token[:7]
		}
		c, err := colorful.Hex(token)
		if err != nil {
			return nil, false
		}
		return c, true
	case strings.HasPrefix(value, "rgb"):
		return parseRGB(value)
	}

	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, false
	}
	hex, ok := namedColors[fields[0]]
	if !ok {
		return nil, false
	}
	c, _ := colorful.Hex(hex)
	return c, true
}

func parseRGB(value string) (color.Color, bool) {
	open, end := strings.IndexByte(value, '('), strings.IndexByte(value, ')')
	if open < 0 || end < open {
		return nil, false
	}
	parts := strings.Split(value[open+1:end], ",")
	if len(parts) < 3 {
		return nil, false
	}

	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, false
		}
		rgb[i] = uint8(n)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, true
}
