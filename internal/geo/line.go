package geo

import "github.com/dgrange/crawlmind/internal/model"

// LineIterator steps through grid tiles along a 2D Bresenham line from
// start to end. Used for line-of-sight traces.
type LineIterator struct {
	currentX, currentY int32
	targetX, targetY   int32
	deltaX, deltaY     int32
	stepX, stepY       int32
	errAcc             int32
	xDominant          bool
	started            bool
}

// NewLineIterator creates a Bresenham line iterator from start to end.
func NewLineIterator(start, end model.Coord) *LineIterator {
	it := &LineIterator{
		currentX: start.X, currentY: start.Y,
		targetX: end.X, targetY: end.Y,
	}

	it.deltaX = abs32(end.X - start.X)
	it.deltaY = abs32(end.Y - start.Y)

	if start.X < end.X {
		it.stepX = 1
	} else {
		it.stepX = -1
	}
	if start.Y < end.Y {
		it.stepY = 1
	} else {
		it.stepY = -1
	}

	it.xDominant = it.deltaX >= it.deltaY
	if it.xDominant {
		it.errAcc = it.deltaX / 2
	} else {
		it.errAcc = it.deltaY / 2
	}

	return it
}

// Next advances the iterator to the next tile.
// The first call yields the start tile; returns false past the target.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true
	}

	if it.currentX == it.targetX && it.currentY == it.targetY {
		return false
	}

	if it.xDominant {
		it.currentX += it.stepX
		it.errAcc += it.deltaY
		if it.errAcc >= it.deltaX {
			it.currentY += it.stepY
			it.errAcc -= it.deltaX
		}
	} else {
		it.currentY += it.stepY
		it.errAcc += it.deltaX
		if it.errAcc >= it.deltaY {
			it.currentX += it.stepX
			it.errAcc -= it.deltaY
		}
	}

	return true
}

// At returns the iterator's current tile.
func (it *LineIterator) At() model.Coord {
	return model.Coord{X: it.currentX, Y: it.currentY}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
