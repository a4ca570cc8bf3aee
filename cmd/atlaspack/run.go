package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopacker/atlaspack"
	"github.com/gopacker/atlaspack/internal/atlasio"
)

// run packs sources under every configured heuristic, renders each
// result into its own work-dir subdirectory, and copies whichever
// heuristic produced the smallest total encoded size into opts.Out —
// mirroring the original tool's per-heuristic output directories, but
// keeping only the best one instead of leaving every candidate behind.
func run(opts *cliOptions, sources []atlasio.Source, stderr io.Writer) error {
	dims := sourceDimensions(sources)

	wd, err := newWorkDir(opts.KeepWorkDir)
	if err != nil {
		return err
	}
	defer wd.close()

	packOpts, err := opts.packOptions()
	if err != nil {
		return err
	}
	results, err := atlaspack.Pack(dims, packOpts)
	if err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	var bestDir string
	var bestSize int64 = -1
	var bestHeuristic atlaspack.Heuristic

	for _, result := range results {
		dir, err := wd.heuristicDir(result.Heuristic.String())
		if err != nil {
			return err
		}
		atlases, err := atlasio.Render(result, sources, opts.Trim)
		if err != nil {
			return fmt.Errorf("render %v: %w", result.Heuristic, err)
		}
		size, err := atlasio.WriteAll(dir, atlases)
		if err != nil {
			return fmt.Errorf("write %v: %w", result.Heuristic, err)
		}
		fmt.Fprintf(stderr, "atlaspack: %-20s bins=%d bytes=%d\n", result.Heuristic, len(result.Bins), size)

		if bestSize == -1 || size < bestSize {
			bestDir, bestSize, bestHeuristic = dir, size, result.Heuristic
		}
	}

	fmt.Fprintf(stderr, "atlaspack: best result by sorting %v (%d bytes)\n", bestHeuristic, bestSize)
	return copyResultToOut(bestDir, opts.Out)
}

func sourceDimensions(sources []atlasio.Source) []atlaspack.Dimension {
	dims := make([]atlaspack.Dimension, len(sources))
	for i, s := range sources {
		b := s.Image.Bounds()
		dims[i] = atlaspack.NewDimension(uint32(b.Dx()), uint32(b.Dy()))
	}
	return dims
}

// copyResultToOut copies every PNG in resultDir into out, creating out if
// necessary and overwriting any files already there.
func copyResultToOut(resultDir, out string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create out dir %s: %w", out, err)
	}
	entries, err := os.ReadDir(resultDir)
	if err != nil {
		return fmt.Errorf("read result dir %s: %w", resultDir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		if err := copyFile(filepath.Join(resultDir, e.Name()), filepath.Join(out, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// vim: ts=4
