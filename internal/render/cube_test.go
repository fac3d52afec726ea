package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const solved = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestNetShape(t *testing.T) {
	out := Net(solved)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 9)
}

func TestNetStickerCounts(t *testing.T) {
	out := Net(solved)
	for _, face := range []string{"U", "R", "F", "D", "L", "B"} {
		assert.Equal(t, 9, strings.Count(out, face), "face %s", face)
	}
}

func TestNetUnknownSymbols(t *testing.T) {
	// Arbitrary alphabets render uncolored but intact.
	custom := strings.NewReplacer(
		"U", "w", "R", "r", "F", "g", "D", "y", "L", "o", "B", "b",
	).Replace(solved)
	out := Net(custom)
	assert.Equal(t, 9, strings.Count(out, "w"))
}
