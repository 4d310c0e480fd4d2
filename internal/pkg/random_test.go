package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(rnd func() uint32, n int) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		values[i] = rnd()
	}
	return values
}

func TestNewDrawRandom(t *testing.T) {
	t.Run("Same seed and draw id replay the same values", func(t *testing.T) {
		first := draw(NewDrawRandom(42, "draw-1"), 16)
		second := draw(NewDrawRandom(42, "draw-1"), 16)

		assert.Equal(t, first, second)
	})

	t.Run("Different draw ids draw different values", func(t *testing.T) {
		first := draw(NewDrawRandom(42, "draw-1"), 16)
		second := draw(NewDrawRandom(42, "draw-2"), 16)

		assert.NotEqual(t, first, second)
	})

	t.Run("Different seeds draw different values", func(t *testing.T) {
		first := draw(NewDrawRandom(1, "draw-1"), 16)
		second := draw(NewDrawRandom(2, "draw-1"), 16)

		assert.NotEqual(t, first, second)
	})
}

func TestNewSeed(t *testing.T) {
	first, err := NewSeed()
	require.NoError(t, err)

	second, err := NewSeed()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateMessageID(t *testing.T) {
	id := GenerateMessageID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateMessageID())
}
