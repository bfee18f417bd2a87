package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard"
	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/internal"
)

//go:embed icons/*.svg
var iconAssets embed.FS

var iconFiles = map[keyboard.Icon]string{
	keyboard.IconEnter:       "icons/enter.svg",
	keyboard.IconEnterSearch: "icons/enter-search.svg",
	keyboard.IconEnterNext:   "icons/enter-next.svg",
	keyboard.IconEnterSend:   "icons/enter-send.svg",
	keyboard.IconShift:       "icons/shift.svg",
	keyboard.IconDelete:      "icons/delete.svg",
	keyboard.IconEmoji:       "icons/emoji.svg",
}

type iconCacheKey struct {
	icon keyboard.Icon
	w, h int32
}

// iconCache rasterizes embedded SVG icons lazily and keeps one texture per
// icon and size. Not safe for concurrent use, like the renderer that owns it.
type iconCache struct {
	textures map[iconCacheKey]*sdl.Texture
}

func newIconCache() *iconCache {
	return &iconCache{textures: make(map[iconCacheKey]*sdl.Texture)}
}

// texture returns the rasterized icon at the requested size, or nil when
// the icon is unknown or rasterization fails. Failures are logged once per
// icon and size because the cache also remembers nil results.
func (c *iconCache) texture(renderer *sdl.Renderer, icon keyboard.Icon, w, h int32) *sdl.Texture {
	key := iconCacheKey{icon: icon, w: w, h: h}
	if tex, ok := c.textures[key]; ok {
		return tex
	}

	tex, err := c.load(renderer, icon, w, h)
	if err != nil {
		internal.Logger().Warn("icon unavailable", "icon", string(icon), "error", err)
	}
	c.textures[key] = tex
	return tex
}

func (c *iconCache) load(renderer *sdl.Renderer, icon keyboard.Icon, w, h int32) (*sdl.Texture, error) {
	path, ok := iconFiles[icon]
	if !ok {
		return nil, fmt.Errorf("no asset for icon %q", icon)
	}
	svgData, err := iconAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon asset: %w", err)
	}
	return svgToTexture(renderer, svgData, w, h)
}

func (c *iconCache) destroy() {
	for _, tex := range c.textures {
		if tex != nil {
			tex.Destroy()
		}
	}
	c.textures = make(map[iconCacheKey]*sdl.Texture)
}

// svgToTexture rasterizes SVG bytes at the requested size and wraps the
// result in an SDL texture, going through an in-memory PNG.
func svgToTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	parsed, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(parsed.ViewBox.W)
		height = int32(parsed.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)
	parsed.SetTarget(0, 0, float64(width), float64(height))
	parsed.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("encode svg as png: %w", err)
	}

	rw, err := sdl.RWFromMem(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("create rwops: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	return texture, nil
}
