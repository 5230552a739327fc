package graphics

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// BuiltinPrefix names a generated solid colour texture, e.g. "builtin/ff8800".
const BuiltinPrefix = "builtin/"

// builtinSize is the edge length of generated textures.
const builtinSize = 4

// ParseBuiltin decodes a builtin texture name into its colour.
func ParseBuiltin(name string) (color.RGBA, bool) {
	hexPart, ok := strings.CutPrefix(name, BuiltinPrefix)
	if !ok || len(hexPart) != 6 {
		return color.RGBA{}, false
	}
	b, err := hex.DecodeString(hexPart)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, true
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerOfTwo converts img to RGBA, rescaling it to power-of-two edges when
// needed so it can repeat and mipmap on GL 2.x drivers.
func PowerOfTwo(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := nextPowerOfTwo(b.Dx()), nextPowerOfTwo(b.Dy())

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		return rgba
	}
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	return rgba
}

func solidImage(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, builtinSize, builtinSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func uploadTexture(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := rgba.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// TextureCache uploads each named texture once and hands out its GL id.
type TextureCache struct {
	dir      string
	textures map[string]uint32
}

func NewTextureCache(dir string) *TextureCache {
	return &TextureCache{dir: dir, textures: make(map[string]uint32)}
}

// Get returns the texture for name, loading it on first use. Names with the
// builtin prefix are generated; everything else is a file under the cache
// directory.
func (c *TextureCache) Get(name string) (uint32, error) {
	if id, ok := c.textures[name]; ok {
		return id, nil
	}

	var rgba *image.RGBA
	if col, ok := ParseBuiltin(name); ok {
		rgba = solidImage(col)
	} else {
		img, err := decodeFile(filepath.Join(c.dir, name))
		if err != nil {
			return 0, err
		}
		rgba = PowerOfTwo(img)
	}

	id := uploadTexture(rgba)
	c.textures[name] = id
	return id, nil
}

// Dispose deletes every uploaded texture.
func (c *TextureCache) Dispose() {
	for name, id := range c.textures {
		gl.DeleteTextures(1, &id)
		delete(c.textures, name)
	}
}
