package types

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Color is a color token understood by the indicator widget.
// It is either one of the named palette colors or a #RGB / #RRGGBB hex code.
type Color string

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// palette maps named colors to their RGB values
var palette = map[string][3]int{
	"black":   {0x1a, 0x20, 0x2c},
	"white":   {0xf7, 0xfa, 0xfc},
	"grey":    {0xa0, 0xae, 0xc0},
	"gray":    {0xa0, 0xae, 0xc0},
	"red":     {0xe5, 0x3e, 0x3e},
	"orange":  {0xdd, 0x6b, 0x20},
	"yellow":  {0xd6, 0x9e, 0x2e},
	"green":   {0x38, 0xa1, 0x69},
	"teal":    {0x31, 0x97, 0x95},
	"cyan":    {0x0b, 0xc5, 0xea},
	"blue":    {0x31, 0x82, 0xce},
	"indigo":  {0x5a, 0x67, 0xd8},
	"purple":  {0x80, 0x5a, 0xd5},
	"magenta": {0xd5, 0x3f, 0x8c},
	"pink":    {0xed, 0x64, 0xa6},
}

// PaletteNames returns the named colors, unordered
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	return names
}

// Validate checks if the Color is a palette name or a hex code
func (c Color) Validate() error {
	if c == "" {
		return goerr.New("color cannot be empty")
	}
	if _, ok := palette[strings.ToLower(string(c))]; ok {
		return nil
	}
	if hexColorPattern.MatchString(string(c)) {
		return nil
	}
	return goerr.New("color must be a palette name or #RGB/#RRGGBB hex code", goerr.V("color", c))
}

// RGB returns the red, green and blue components of the color.
// ok is false when the color is neither a palette name nor a hex code.
func (c Color) RGB() (r, g, b int, ok bool) {
	if rgb, found := palette[strings.ToLower(string(c))]; found {
		return rgb[0], rgb[1], rgb[2], true
	}
	if !hexColorPattern.MatchString(string(c)) {
		return 0, 0, 0, false
	}

	hex := string(c)[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return hexByte(hex[0:2]), hexByte(hex[2:4]), hexByte(hex[4:6]), true
}

// String returns the string representation of Color
func (c Color) String() string {
	return string(c)
}

func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
