// Package renderer draws the creature's current animation frame.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"go.uber.org/zap"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/iYeremy/deskpet/internal/logger"
)

// Renderer owns one texture per animation frame and blits the requested one
// scaled to the creature window. The clear color is fully transparent; where
// the compositor honors alpha the desktop shows through.
type Renderer struct {
	target *sdl.Renderer
	width  int32
	height int32

	clips map[string][]*sdl.Texture
}

// New creates a renderer drawing into target at the creature size.
func New(target *sdl.Renderer, width, height int) (*Renderer, error) {
	r := &Renderer{
		target: target,
		width:  int32(width),
		height: int32(height),
		clips:  make(map[string][]*sdl.Texture),
	}

	info, err := target.GetInfo()
	if err != nil {
		return nil, fmt.Errorf("renderer info: %w", err)
	}
	logger.Info("renderer initialized",
		zap.String("driver", info.Name),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	return r, nil
}

// Close releases all uploaded textures.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, frames := range r.clips {
		for _, tex := range frames {
			tex.Destroy()
		}
	}
	r.clips = make(map[string][]*sdl.Texture)
}

// Upload registers the frames of one animation clip.
func (r *Renderer) Upload(name string, frames []*image.NRGBA) error {
	textures := make([]*sdl.Texture, 0, len(frames))
	for idx, img := range frames {
		tex, err := r.textureFrom(img)
		if err != nil {
			return fmt.Errorf("upload %s frame %d: %w", name, idx, err)
		}
		textures = append(textures, tex)
	}
	r.clips[name] = textures

	logger.Debug("animation uploaded",
		zap.String("animation", name),
		zap.Int("frames", len(textures)),
	)
	return nil
}

// Has reports whether an animation clip was uploaded under name.
func (r *Renderer) Has(name string) bool {
	return len(r.clips[name]) > 0
}

// Draw renders one frame of the named animation and presents it. A name
// without uploaded frames falls back to the idle clip, mirroring the
// animation catalog's fallback. Mirrored flips horizontally at copy time.
func (r *Renderer) Draw(animation string, frame int, mirrored bool) error {
	frames := r.clips[animation]
	if len(frames) == 0 {
		frames = r.clips["idle"]
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames for animation %q", animation)
	}
	tex := frames[frame%len(frames)]

	if err := r.target.SetDrawColor(0, 0, 0, 0); err != nil {
		return fmt.Errorf("set clear color: %w", err)
	}
	if err := r.target.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	dst := &sdl.Rect{X: 0, Y: 0, W: r.width, H: r.height}
	flip := sdl.FLIP_NONE
	if mirrored {
		flip = sdl.FLIP_HORIZONTAL
	}
	if err := r.target.CopyEx(tex, nil, dst, 0, nil, flip); err != nil {
		return fmt.Errorf("copy frame: %w", err)
	}

	r.target.Present()
	return nil
}

// textureFrom uploads one NRGBA image as an SDL texture. NRGBA bytes are
// R,G,B,A in memory, which SDL reads as ABGR8888 on little-endian.
func (r *Renderer) textureFrom(img *image.NRGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("empty frame image")
	}

	surf, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()),
		32, int32(img.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surf.Free()

	tex, err := r.target.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("set blend mode: %w", err)
	}
	return tex, nil
}
