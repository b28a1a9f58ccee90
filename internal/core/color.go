package core

import "fmt"

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// Palette used by the game and its renderers.
const (
	ColorNone    Color = 0x00000000
	ColorBlack   Color = 0x000000FF
	ColorWhite   Color = 0xFFFFFFFF
	ColorSky     Color = 0x0195C3FF
	ColorTitle   Color = 0xF6EF29FF
	ColorHUD     Color = 0xF6EF23FF
	ColorOutline Color = 0x543847FF
	ColorGrass   Color = 0x73BF2EFF
	ColorChevron Color = 0x9CE659FF
	ColorShadow  Color = 0x558022FF
	ColorDirt    Color = 0xDED895FF
	ColorSpeckDk Color = 0xB8A86AFF
	ColorSpeckLt Color = 0xEFEAB8FF
	ColorRock    Color = 0x8A8A7EFF
	ColorPipe    Color = 0x5EB02AFF
	ColorBird    Color = 0xF8D030FF
)

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c)
}

// Hex returns the color as a "#rrggbb" string, ignoring alpha.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
