// Package atlasio is the image-I/O collaborator described in spec §6: it
// turns a set of source image files and an atlaspack.PackResult into one
// PNG per bin, and is the only place in the repository that imports an
// image-decoding library.
package atlasio

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gopacker/atlaspack"
)

// Source is one input image: the path it was read from and the decoded
// pixels to be blitted into an atlas.
type Source struct {
	Path  string
	Image image.Image
}

// LoadSources decodes every path into a Source, in order. Additional
// formats (BMP, TIFF) are registered via golang.org/x/image alongside the
// standard library's PNG/JPEG/GIF decoders.
func LoadSources(paths []string) ([]Source, error) {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("atlasio: open %s: %w", p, err)
		}
		img, _, err := image.Decode(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("atlasio: decode %s: %w", p, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("atlasio: close %s: %w", p, closeErr)
		}
		sources[i] = Source{Path: p, Image: img}
	}
	return sources, nil
}

// Atlas is a single rendered bin: its pixels, and the filename it should be
// written to (a hash of the bin's placement layout, so repeated runs that
// produce the same layout get stable names).
type Atlas struct {
	Image    *image.RGBA
	FileName string
}

// Render draws every Bin in result into one RGBA image per bin. When trim
// is true, a bin's canvas spans from the origin to the largest Right() and
// Bottom() of its placements instead of using the bin's full size. Placements
// marked Flipped are rotated 270 degrees (counter-clockwise, in image
// coordinates where y grows downward) before being composited, per spec
// §6.
func Render(result atlaspack.PackResult, sources []Source, trim bool) ([]Atlas, error) {
	atlases := make([]Atlas, len(result.Bins))
	for i, bin := range result.Bins {
		canvas := canvasSize(bin, trim)
		dst := image.NewRGBA(image.Rect(0, 0, int(canvas.W), int(canvas.H)))

		for _, p := range bin.Placements {
			if int(p.Index) >= len(sources) {
				return nil, fmt.Errorf("atlasio: placement index %d has no matching source image", p.Index)
			}
			src := sources[p.Index].Image
			if p.Rect.Flipped {
				src = imaging.Rotate270(src)
			}
			bounds := image.Rect(int(p.Rect.X), int(p.Rect.Y), int(p.Rect.Right()), int(p.Rect.Bottom()))
			draw.Draw(dst, bounds, src, image.Point{}, draw.Src)
		}

		atlases[i] = Atlas{Image: dst, FileName: atlasFileName(i, bin)}
	}
	return atlases, nil
}

func canvasSize(bin *atlaspack.Bin, trim bool) atlaspack.Dimension {
	if !trim {
		return bin.Size
	}
	var w, h uint32
	for _, p := range bin.Placements {
		w = max(w, p.Rect.Right())
		h = max(h, p.Rect.Bottom())
	}
	return atlaspack.Dimension{W: w, H: h}
}

// atlasFileName derives a stable name for a bin's atlas from its index and
// a hash of its placements (index, position, size, flip), so that the same
// layout across CLI runs produces identical output paths. Pixel content is
// not part of the hash.
func atlasFileName(index int, bin *atlaspack.Bin) string {
	h := xxhash.New()
	for _, p := range bin.Placements {
		fmt.Fprintf(h, "%d:%d,%d,%dx%d,%v;", p.Index, p.Rect.X, p.Rect.Y, p.Rect.Size.W, p.Rect.Size.H, p.Rect.Flipped)
	}
	return fmt.Sprintf("atlas-%02d-%016x.png", index, h.Sum64())
}

// WriteAll writes every Atlas to dir, returning the total encoded byte
// size across all files (used by the CLI to pick the best heuristic's
// result, per spec §6's "driver selection").
func WriteAll(dir string, atlases []Atlas) (int64, error) {
	var total int64
	for _, a := range atlases {
		path := filepath.Join(dir, a.FileName)
		f, err := os.Create(path)
		if err != nil {
			return 0, fmt.Errorf("atlasio: create %s: %w", path, err)
		}
		if err := png.Encode(f, a.Image); err != nil {
			f.Close()
			return 0, fmt.Errorf("atlasio: encode %s: %w", path, err)
		}
		info, err := f.Stat()
		if err == nil {
			total += info.Size()
		}
		if err := f.Close(); err != nil {
			return 0, fmt.Errorf("atlasio: close %s: %w", path, err)
		}
	}
	return total, nil
}

// vim: ts=4
