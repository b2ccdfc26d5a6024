package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Rating", Truncate("Rating", 10))
	assert.Equal(t, "Rat…", Truncate("Rating", 4))
	assert.Equal(t, "", Truncate("Rating", 0))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abc…", Fit("abcdefg", 4))
	assert.Equal(t, "", Fit("abc", -1))
}
