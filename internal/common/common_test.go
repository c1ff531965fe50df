package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"Dog", "Small"}, Dedup([]string{"Dog", "Small", "Dog"}))
	assert.Equal(t, []int{1}, Dedup([]int{1}))
	assert.Empty(t, Dedup([]int(nil)))
}

func TestIsOutputFile(t *testing.T) {
	assert.True(t, IsOutputFile("/src/canis/subenum_gen.go", ""))
	assert.True(t, IsOutputFile("/src/canis/custom.go", "custom.go"))
	assert.False(t, IsOutputFile("/src/canis/canis.go", ""))
	assert.False(t, IsOutputFile("", ""))
}
