package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEndProducesAtlasInOutDir(t *testing.T) {
	demoDir := t.TempDir()
	sources, err := generateDemoSources(demoDir, 6)
	require.NoError(t, err)

	outDir := t.TempDir()
	opts := &cliOptions{Width: 256, Height: 256, Out: outDir}

	var stderr bytes.Buffer
	err = run(opts, sources, &stderr)
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.True(t, filepath.Ext(e.Name()) == ".png")
	}
	assert.Contains(t, stderr.String(), "best result by sorting")
}
