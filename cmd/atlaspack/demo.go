package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/gopacker/atlaspack/internal/atlasio"
)

const (
	demoMinSide = 8
	demoMaxSide = 64
)

// generateDemoSources fills dir with count randomly sized, solid-colored
// placeholder PNGs and returns them as atlasio.Sources ready to pack, so
// --demo can be exercised without any real sprite sheet on hand.
func generateDemoSources(dir string, count int) ([]atlasio.Source, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("demo: create %s: %w", dir, err)
	}

	sources := make([]atlasio.Source, count)
	for i := 0; i < count; i++ {
		w := demoMinSide + rand.Intn(demoMaxSide-demoMinSide)
		h := demoMinSide + rand.Intn(demoMaxSide-demoMinSide)
		c := color.RGBA{R: uint8(rand.Intn(256)), G: uint8(rand.Intn(256)), B: uint8(rand.Intn(256)), A: 0xFF}

		img := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, c)
			}
		}

		path := filepath.Join(dir, fmt.Sprintf("demo_%03d.png", i))
		if err := writePNG(path, img); err != nil {
			return nil, err
		}
		sources[i] = atlasio.Source{Path: path, Image: img}
	}
	return sources, nil
}

// vim: ts=4
