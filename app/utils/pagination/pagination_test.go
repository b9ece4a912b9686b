package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetIsZeroBasedFromOneBasedPage(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 45, Offset(10, 5))
}

func TestTotalPagesRoundsUp(t *testing.T) {
	assert.Equal(t, 0, New(1, 10, 0).TotalPages)
	assert.Equal(t, 1, New(1, 10, 10).TotalPages)
	assert.Equal(t, 2, New(1, 10, 11).TotalPages)
	assert.Equal(t, 3, New(1, 2, 5).TotalPages)
}

func TestHasPrevAndHasNext(t *testing.T) {
	p := New(1, 2, 5)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p = New(3, 2, 5)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}
