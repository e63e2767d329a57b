package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// treeLookup adapts a parent map to the walk's lookup signature.
func treeLookup(parents map[int64]*int64) func(int64) (*int64, bool) {
	return func(id int64) (*int64, bool) {
		parent, ok := parents[id]
		if !ok {
			return nil, false
		}
		return parent, true
	}
}

func ptr(v int64) *int64 { return &v }

func TestWouldCreateCycle(t *testing.T) {
	// 1 -> 2 -> 3 (3 is root)
	parents := map[int64]*int64{
		1: ptr(2),
		2: ptr(3),
		3: nil,
		4: nil,
	}

	t.Run("moving an ancestor under its descendant cycles", func(t *testing.T) {
		assert.True(t, wouldCreateCycle(3, 1, treeLookup(parents)))
		assert.True(t, wouldCreateCycle(2, 1, treeLookup(parents)))
	})

	t.Run("moving under an unrelated folder is fine", func(t *testing.T) {
		assert.False(t, wouldCreateCycle(1, 4, treeLookup(parents)))
		assert.False(t, wouldCreateCycle(4, 3, treeLookup(parents)))
	})

	t.Run("moving a leaf deeper is fine", func(t *testing.T) {
		assert.False(t, wouldCreateCycle(4, 1, treeLookup(parents)))
	})

	t.Run("direct self-parent cycles", func(t *testing.T) {
		assert.True(t, wouldCreateCycle(1, 1, treeLookup(parents)))
	})

	t.Run("corrupted links fail safe as a cycle", func(t *testing.T) {
		// 10 and 11 point at each other; the bounded walk reports a
		// cycle instead of looping.
		corrupted := map[int64]*int64{
			10: ptr(11),
			11: ptr(10),
		}
		assert.True(t, wouldCreateCycle(5, 10, treeLookup(corrupted)))
	})

	t.Run("missing parent ends the walk", func(t *testing.T) {
		dangling := map[int64]*int64{20: ptr(99)}
		assert.False(t, wouldCreateCycle(5, 20, treeLookup(dangling)))
	})
}
