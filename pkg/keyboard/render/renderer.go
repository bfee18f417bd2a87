// Package render draws built keyboards onto an SDL renderer: rounded key
// rects, centered labels, corner hint numbers and rasterized SVG icons.
// The geometry core never imports this package; it only names icons.
package render

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard"
)

// Renderer draws keyboards onto one SDL renderer. It owns the fonts and
// the icon texture cache; Close releases them.
type Renderer struct {
	target   *sdl.Renderer
	font     *ttf.Font
	hintFont *ttf.Font
	icons    *iconCache
}

// NewRenderer loads fonts sized for keyHeight from the active theme's
// font path.
func NewRenderer(target *sdl.Renderer, keyHeight int) (*Renderer, error) {
	theme := GetTheme()

	font, err := ttf.OpenFont(theme.FontPath, keyHeight/2)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}
	hintFont, err := ttf.OpenFont(theme.FontPath, keyHeight/4)
	if err != nil {
		font.Close()
		return nil, fmt.Errorf("open hint font %s: %w", theme.FontPath, err)
	}

	return &Renderer{
		target:   target,
		font:     font,
		hintFont: hintFont,
		icons:    newIconCache(),
	}, nil
}

// Close releases the fonts and cached icon textures.
func (r *Renderer) Close() {
	r.icons.destroy()
	r.hintFont.Close()
	r.font.Close()
}

// DrawKeyboard draws every key of kb with the keyboard's top-left corner
// at (originX, originY).
func (r *Renderer) DrawKeyboard(kb *keyboard.Keyboard, originX, originY int32) {
	theme := GetTheme()
	for _, key := range kb.Keys {
		r.drawKey(key, kb.ShiftState(), theme, originX, originY)
	}
}

func (r *Renderer) drawKey(key *keyboard.Key, shift keyboard.ShiftState, theme Theme, originX, originY int32) {
	rect := sdl.Rect{
		X: originX + int32(key.X),
		Y: originY + int32(key.Y),
		W: int32(key.Width),
		H: int32(key.Height),
	}

	bg := theme.KeyColor
	if key.Code < 0 {
		bg = theme.SpecialKeyColor
	}
	if key.Focused {
		bg = theme.FocusedColor
	}
	if key.Pressed {
		bg = theme.PressedColor
	}

	// Inset by one pixel so adjacent keys stay visually separate even
	// with a zero gap.
	gfx.RoundedBoxColor(r.target,
		rect.X+1, rect.Y+1, rect.X+rect.W-2, rect.Y+rect.H-2,
		theme.KeyRadius, bg)

	if key.Icon != keyboard.IconNone {
		if r.drawIcon(key.Icon, rect) {
			return
		}
	}

	if label := displayLabel(key, shift); label != "" {
		r.drawCenteredText(r.font, label, rect, theme.TextColor)
	}
	if key.TopSmallNumber != "" {
		r.drawHint(key.TopSmallNumber, rect, theme.HintColor)
	}
}

// displayLabel applies the keyboard shift state to a character key's label.
func displayLabel(key *keyboard.Key, shift keyboard.ShiftState) string {
	if key.Code >= 0 && shift != keyboard.ShiftOff {
		return strings.ToUpper(key.Label)
	}
	return key.Label
}

func (r *Renderer) drawIcon(icon keyboard.Icon, rect sdl.Rect) bool {
	size := rect.H / 2
	tex := r.icons.texture(r.target, icon, size, size)
	if tex == nil {
		return false
	}
	dst := sdl.Rect{
		X: rect.X + (rect.W-size)/2,
		Y: rect.Y + (rect.H-size)/2,
		W: size,
		H: size,
	}
	r.target.Copy(tex, nil, &dst)
	return true
}

func (r *Renderer) drawCenteredText(font *ttf.Font, text string, rect sdl.Rect, color sdl.Color) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := r.target.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	dst := sdl.Rect{
		X: rect.X + (rect.W-surface.W)/2,
		Y: rect.Y + (rect.H-surface.H)/2,
		W: surface.W,
		H: surface.H,
	}
	r.target.Copy(texture, nil, &dst)
}

func (r *Renderer) drawHint(text string, rect sdl.Rect, color sdl.Color) {
	surface, err := r.hintFont.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := r.target.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	pad := int32(4)
	dst := sdl.Rect{
		X: rect.X + rect.W - surface.W - pad,
		Y: rect.Y + pad,
		W: surface.W,
		H: surface.H,
	}
	r.target.Copy(texture, nil, &dst)
}

// DrawLabel draws free-standing text, used by callers for text previews
// above the keyboard.
func (r *Renderer) DrawLabel(text string, x, y int32, color sdl.Color) {
	surface, err := r.font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := r.target.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	r.target.Copy(texture, nil, &dst)
}
