package dom

import "math"

// DefaultViewportThreshold is the fractional threshold used when InView is
// called with a non-positive threshold.
const DefaultViewportThreshold = 0.75

// Viewport describes the visible area of a document.
type Viewport struct {
	// Height is the visible height in CSS pixels (clientHeight).
	Height float64
}

// InView reports whether the threshold element of a sequence is visible.
//
// tops holds the top edge of each element relative to the viewport, in
// document order. The checked element is the 1-indexed position
// ceil(n - (1-threshold)*fixedCount); fixedCount defaults to len(tops) when
// non-positive. The second return value is false for an empty sequence,
// where the result is undefined rather than "not in view".
func (v Viewport) InView(tops []float64, threshold float64, fixedCount int) (inView, ok bool) {
	n := len(tops)
	if n == 0 {
		return false, false
	}
	if threshold <= 0 {
		threshold = DefaultViewportThreshold
	}
	if fixedCount <= 0 {
		fixedCount = n
	}

	index := int(math.Ceil(float64(n) - (1-threshold)*float64(fixedCount)))
	if index < 1 {
		index = 1
	}
	if index > n {
		index = n
	}

	top := tops[index-1]
	return top >= 0 && top <= v.Height, true
}
