package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 30}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(110, 40))
	assert.False(t, r.Contains(9, 20))
	assert.False(t, r.Contains(50, 41))
}

func TestStatsLine(t *testing.T) {
	assert.Equal(t, "Tokens: 300   Lives: 10   Score: 0", statsLine(300, 10, 0))
}
