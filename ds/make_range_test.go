package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, MakeRange(0, 4, 1))
	assert.Equal(t, []int64{0, 16, 32}, MakeRange[int64](0, 48, 16))
	assert.Equal(t, []int{}, MakeRange(5, 5, 1))
	assert.Equal(t, []int{}, MakeRange(0, 5, 0))
}
