package atlasio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopacker/atlaspack"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderPlacesAndRotates(t *testing.T) {
	sources := []Source{
		{Path: "a.png", Image: solidImage(10, 3, color.RGBA{255, 0, 0, 255})},
	}
	result := atlaspack.PackResult{
		Heuristic: atlaspack.HeuristicArea,
		Bins: []*atlaspack.Bin{
			{
				Size: atlaspack.Dimension{W: 3, H: 10},
				Placements: []atlaspack.Placement{
					{Index: 0, Rect: atlaspack.Rectangle{X: 0, Y: 0, Size: atlaspack.Dimension{W: 3, H: 10}, Flipped: true}},
				},
			},
		},
	}

	atlases, err := Render(result, sources, false)
	require.NoError(t, err)
	require.Len(t, atlases, 1)
	require.Equal(t, 3, atlases[0].Image.Bounds().Dx())
	require.Equal(t, 10, atlases[0].Image.Bounds().Dy())
	// Unrotated, the 10x3 source would only cover rows 0-2 of the 3x10 slot.
	require.Equal(t, color.RGBA{255, 0, 0, 255}, atlases[0].Image.RGBAAt(0, 9))
}

func TestRenderTrimsCanvas(t *testing.T) {
	sources := []Source{
		{Path: "a.png", Image: solidImage(4, 4, color.RGBA{0, 255, 0, 255})},
	}
	result := atlaspack.PackResult{
		Bins: []*atlaspack.Bin{
			{
				Size: atlaspack.Dimension{W: 64, H: 64},
				Placements: []atlaspack.Placement{
					{Index: 0, Rect: atlaspack.Rectangle{X: 0, Y: 0, Size: atlaspack.Dimension{W: 4, H: 4}}},
				},
			},
		},
	}

	trimmed, err := Render(result, sources, true)
	require.NoError(t, err)
	require.Equal(t, 4, trimmed[0].Image.Bounds().Dx())
	require.Equal(t, 4, trimmed[0].Image.Bounds().Dy())

	untrimmed, err := Render(result, sources, false)
	require.NoError(t, err)
	require.Equal(t, 64, untrimmed[0].Image.Bounds().Dx())
}

func TestWriteAllProducesStableNames(t *testing.T) {
	sources := []Source{{Path: "a.png", Image: solidImage(2, 2, color.RGBA{1, 2, 3, 255})}}
	result := atlaspack.PackResult{
		Bins: []*atlaspack.Bin{
			{
				Size: atlaspack.Dimension{W: 2, H: 2},
				Placements: []atlaspack.Placement{
					{Index: 0, Rect: atlaspack.Rectangle{X: 0, Y: 0, Size: atlaspack.Dimension{W: 2, H: 2}}},
				},
			},
		},
	}

	atlases1, err := Render(result, sources, false)
	require.NoError(t, err)
	atlases2, err := Render(result, sources, false)
	require.NoError(t, err)
	require.Equal(t, atlases1[0].FileName, atlases2[0].FileName)

	dir := t.TempDir()
	total, err := WriteAll(dir, atlases1)
	require.NoError(t, err)
	require.Greater(t, total, int64(0))

	_, err = os.Stat(filepath.Join(dir, atlases1[0].FileName))
	require.NoError(t, err)
}
