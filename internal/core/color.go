package core

import "fmt"

// Color is a 24-bit RGB color. Frontends translate it to their own color model.
type Color struct {
	R, G, B uint8
}

// Palette colors used by the game.
var (
	ColorBackground = Color{0, 0, 0}
	ColorBorder     = Color{93, 216, 228}
	ColorApple      = Color{255, 0, 0}
	ColorSnake      = Color{0, 255, 0}
)

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
