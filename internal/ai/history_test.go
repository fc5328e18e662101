package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgrange/crawlmind/internal/model"
)

func TestHistoryCapacityBound(t *testing.T) {
	var h LocationHistory
	for x := int32(0); x < 30; x++ {
		h.Push(at(x, 0))
	}

	assert.Equal(t, historyCapacity, h.Len(), "buffer must cap at capacity")
	assert.False(t, h.Contains(at(0, 0)), "oldest entries fall off the front")
	assert.True(t, h.Contains(at(29, 0)), "newest entry retained")
	assert.True(t, h.Contains(at(18, 0)), "capacity-th newest entry retained")
	assert.False(t, h.Contains(at(17, 0)))
}

func TestHistorySkipsConsecutiveDuplicates(t *testing.T) {
	var h LocationHistory
	h.Push(at(1, 1))
	h.Push(at(1, 1))
	h.Push(at(2, 1))
	h.Push(at(1, 1)) // non-consecutive repeat is a real entry

	assert.Equal(t, 3, h.Len())
}

func TestHistoryTrimToSight(t *testing.T) {
	actor := model.NewActor(1, "Subject", 1, 0, at(0, 0), 10)

	var h LocationHistory
	h.Push(at(20, 0)) // outside the default sight radius of 8
	h.Push(at(8, 0))  // exactly on the edge
	h.Push(at(1, 1))

	h.TrimToSight(actor)

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.Contains(at(20, 0)))
	assert.True(t, h.Contains(at(8, 0)))
	assert.True(t, h.Contains(at(1, 1)))
}

func TestHistoryForwardOf(t *testing.T) {
	var h LocationHistory
	h.Push(at(0, 0))

	pos := at(3, 0) // implied travel direction: east

	tests := []struct {
		name    string
		dest    model.Coord
		forward bool
	}{
		{"continuing east", at(4, 0), true},
		{"diagonal with an east component", at(4, 1), true},
		{"perpendicular counts as forward", at(3, 1), true},
		{"reversing west", at(2, 0), false},
		{"diagonal back west", at(2, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.forward, h.ForwardOf(pos, tt.dest))
		})
	}
}

func TestHistoryForwardOfEmptyHistory(t *testing.T) {
	var h LocationHistory
	assert.True(t, h.ForwardOf(at(3, 3), at(2, 3)), "no history means every heading is forward")
}

func TestHistoryCloneIsIndependent(t *testing.T) {
	var h LocationHistory
	h.Push(at(1, 1))

	clone := h.Clone()
	h.Push(at(2, 2))

	assert.Equal(t, 1, clone.Len())
	assert.False(t, clone.Contains(at(2, 2)))
}
