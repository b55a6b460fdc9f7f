package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedWritesParsableDataset(t *testing.T) {
	f := newFeed(1, 100, false)
	var buf bytes.Buffer
	require.NoError(t, f.write(&buf))

	points, err := backend.ParseCSV(&buf, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, points, len(days))
	for i, p := range points {
		assert.Equal(t, days[i], p.Label)
		assert.Equal(t, 100.0, p.Target)
		assert.GreaterOrEqual(t, p.Value, 0.0)
	}
}

func TestFeedStepUnsignedStaysNonNegative(t *testing.T) {
	f := newFeed(7, 10, false)
	for range 1000 {
		f.step()
		for _, v := range f.values {
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestFeedWriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale, 1\n"), 0o644))

	f := newFeed(3, 50, true)
	require.NoError(t, f.writeFile(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	points, err := backend.ParseCSV(file, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, points, len(days))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}
