package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Clamp(5, 0, 2))
	assert.Equal(0, Clamp(-3, 0, 2))
	assert.Equal(1, Clamp(1, 0, 2))
}

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(24, 12))
	assert.Equal(7, Mod(7, 12))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}
