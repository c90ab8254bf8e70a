package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestDivisibleByM(t *testing.T) {
	expectedValues := map[int]int{
		0:   0,
		1:   16,
		15:  16,
		16:  16,
		17:  32,
		294: 304,
	}
	for n, expected := range expectedValues {
		assert.Equal(t, expected, NearestDivisibleByM(n, 16))
	}
	assert.Equal(t, int64(8), NearestDivisibleByM(int64(5), 4))
}

func TestPaddingLength(t *testing.T) {
	assert.Equal(t, 0, PaddingLength(32, 16))
	assert.Equal(t, 10, PaddingLength(294, 16))
	assert.Equal(t, int64(15), PaddingLength(int64(33), 16))
}
