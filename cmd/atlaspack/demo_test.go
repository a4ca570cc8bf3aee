package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoSourcesProducesRequestedCount(t *testing.T) {
	dir := t.TempDir()
	sources, err := generateDemoSources(dir, 12)
	require.NoError(t, err)
	require.Len(t, sources, 12)

	for _, s := range sources {
		b := s.Image.Bounds()
		assert.GreaterOrEqual(t, b.Dx(), demoMinSide)
		assert.Less(t, b.Dx(), demoMaxSide)
		assert.GreaterOrEqual(t, b.Dy(), demoMinSide)
		assert.Less(t, b.Dy(), demoMaxSide)
	}
}
