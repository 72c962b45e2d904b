package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItemsSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	require.NoError(t, os.WriteFile(path, []byte("coffee\n\n  tea  \n\ncocoa\n"), 0o644))

	items, err := loadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee", "tea", "cocoa"}, items)
}

func TestPlayRunsToChampion(t *testing.T) {
	// [a b c] pairs into (a,b) plus a bye for c. Picking 1 then 2
	// crowns c.
	in := strings.NewReader("1\n2\n")
	var out bytes.Buffer

	require.NoError(t, play(in, &out, []string{"a", "b", "c"}))

	text := out.String()
	assert.Contains(t, text, "Round 1")
	assert.Contains(t, text, "Round 2")
	assert.Contains(t, text, "Champion: c")
}

func TestPlayRetriesBadInput(t *testing.T) {
	in := strings.NewReader("yes\n1\n")
	var out bytes.Buffer

	require.NoError(t, play(in, &out, []string{"a", "b"}))

	assert.Contains(t, out.String(), "pick 1 or 2")
	assert.Contains(t, out.String(), "Champion: a")
}

func TestPlayEmptyList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, play(strings.NewReader(""), &out, nil))
	assert.Contains(t, out.String(), "No champion")
}
