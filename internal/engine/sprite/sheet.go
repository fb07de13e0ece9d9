// Package sprite loads animation sheets and slices them into frames.
package sprite

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Spec describes one animation sheet and how to slice it.
type Spec struct {
	File      string
	Frames    int
	Interval  time.Duration
	Layout    string // horizontal or vertical
	FrameSize []int  // optional [w, h] override
}

// Animation is a sliced sheet ready for upload.
type Animation struct {
	Name     string
	Frames   []*image.NRGBA
	Interval time.Duration
}

// Load reads and slices every configured animation sheet. Relative file
// names resolve under basePath.
func Load(basePath string, specs map[string]Spec) (map[string]Animation, error) {
	anims := make(map[string]Animation, len(specs))
	for name, spec := range specs {
		path := spec.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(basePath, path)
		}

		sheet, err := loadImage(path)
		if err != nil {
			return nil, fmt.Errorf("load sprite %s: %w", name, err)
		}

		anims[name] = Animation{
			Name:     name,
			Frames:   Slice(sheet, spec),
			Interval: spec.Interval,
		}
	}
	return anims, nil
}

// Slice cuts a sheet into frames. A single-frame spec, a grid that does not
// fit the sheet at all, or a degenerate frame size returns the whole sheet
// as one frame, so a hand-made sheet with a wrong frame count still shows
// something instead of failing.
func Slice(sheet *image.NRGBA, spec Spec) []*image.NRGBA {
	total := spec.Frames
	if total < 1 {
		total = 1
	}
	whole := []*image.NRGBA{sheet}
	if total == 1 {
		return whole
	}

	b := sheet.Bounds()
	var fw, fh int
	switch {
	case len(spec.FrameSize) == 2:
		fw, fh = spec.FrameSize[0], spec.FrameSize[1]
	case spec.Layout == "vertical":
		fw, fh = b.Dx(), b.Dy()/total
	default:
		fw, fh = b.Dx()/total, b.Dy()
	}
	if fw < 1 || fh < 1 {
		return whole
	}

	frames := make([]*image.NRGBA, 0, total)
	for i := 0; i < total; i++ {
		x, y := i*fw, 0
		if spec.Layout == "vertical" {
			x, y = 0, i*fh
		}
		// Stop at the sheet edge rather than wrapping
		if x+fw > b.Dx() || y+fh > b.Dy() {
			break
		}
		r := image.Rect(x, y, x+fw, y+fh).Add(b.Min)
		frames = append(frames, sheet.SubImage(r).(*image.NRGBA))
	}
	if len(frames) == 0 {
		return whole
	}
	return frames
}

// loadImage decodes a sheet file into NRGBA, the layout the renderer
// uploads directly.
func loadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img, nil
}
