package render

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Theme holds the colors and font used to draw a keyboard.
type Theme struct {
	KeyColor        sdl.Color
	SpecialKeyColor sdl.Color
	PressedColor    sdl.Color
	FocusedColor    sdl.Color
	TextColor       sdl.Color
	HintColor       sdl.Color
	BackgroundColor sdl.Color
	FontPath        string
	KeyRadius       int32
}

var defaultTheme = Theme{
	KeyColor:        sdl.Color{R: 50, G: 50, B: 60, A: 255},
	SpecialKeyColor: sdl.Color{R: 38, G: 38, B: 46, A: 255},
	PressedColor:    sdl.Color{R: 100, G: 100, B: 240, A: 255},
	FocusedColor:    sdl.Color{R: 80, G: 80, B: 120, A: 255},
	TextColor:       sdl.Color{R: 255, G: 255, B: 255, A: 255},
	HintColor:       sdl.Color{R: 170, G: 170, B: 180, A: 255},
	BackgroundColor: sdl.Color{R: 15, G: 15, B: 20, A: 255},
	KeyRadius:       6,
}

// The active theme sits behind an atomic pointer so a swap is safe against
// a render loop reading it.
var currentTheme = atomic.NewPointer(&defaultTheme)

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	currentTheme.Store(&t)
}

// GetTheme returns a copy of the active theme.
func GetTheme() Theme {
	return *currentTheme.Load()
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
