package layout

import (
	"math"

	"github.com/tsawler/blockify/model"
)

// maxLaneCandidates bounds the number of positions tried per sweep. When the
// configured thickness would produce more, the stride is widened to
// extent/maxLaneCandidates.
const maxLaneCandidates = 1 << 16

// FindVerticalLane sweeps vertical lanes across area in the rule's vertical
// direction and returns the first valid lane that separates at least one
// element on each side. Candidate positions step by the lane width starting
// at the area edge the sweep begins from.
func FindVerticalLane(area *Area, rule Rule) (Lane, bool) {
	if area == nil || rule == nil || area.Len() == 0 {
		return Lane{}, false
	}
	forward := rule.VerticalSweepDirection() == LeftToRight
	return sweep(area, Vertical, rule.VerticalLaneWidth(area), forward, func(lane model.Rect) bool {
		return rule.IsValidVerticalLane(area, lane)
	})
}

// FindHorizontalLane sweeps horizontal lanes across area in the rule's
// horizontal direction and returns the first valid lane that separates at
// least one element on each side.
func FindHorizontalLane(area *Area, rule Rule) (Lane, bool) {
	if area == nil || rule == nil || area.Len() == 0 {
		return Lane{}, false
	}
	// Y grows upwards, so top-to-bottom sweeps from MaxY towards MinY.
	forward := rule.HorizontalSweepDirection() == BottomToTop
	return sweep(area, Horizontal, rule.HorizontalLaneHeight(area), forward, func(lane model.Rect) bool {
		return rule.IsValidHorizontalLane(area, lane)
	})
}

// sweep tries lanes of the given thickness along axis. forward means towards
// increasing coordinates.
func sweep(area *Area, axis Axis, thickness float64, forward bool, valid func(model.Rect) bool) (Lane, bool) {
	r := area.Rect()

	lo, hi := r.MinX, r.MaxX
	if axis == Horizontal {
		lo, hi = r.MinY, r.MaxY
	}
	extent := hi - lo

	if !(thickness > 0) || math.IsInf(thickness, 0) || !(extent > 0) || thickness > extent {
		return Lane{}, false
	}

	stride := thickness
	if extent/stride > maxLaneCandidates {
		stride = extent / maxLaneCandidates
	}
	n := int(math.Floor((extent-thickness)/stride)) + 1

	for i := 0; i < n; i++ {
		var start float64
		if forward {
			start = lo + float64(i)*stride
		} else {
			start = hi - thickness - float64(i)*stride
		}

		lane := laneRect(r, axis, start, start+thickness)
		if !valid(lane) {
			continue
		}

		l := Lane{Axis: axis, Rect: lane}
		if area.separates(axis, l.Cut()) {
			return l, true
		}
	}

	return Lane{}, false
}

// laneRect spans the full area across the axis and [from, to] along it.
func laneRect(r model.Rect, axis Axis, from, to float64) model.Rect {
	if axis == Vertical {
		return model.Rect{MinX: from, MinY: r.MinY, MaxX: to, MaxY: r.MaxY}
	}
	return model.Rect{MinX: r.MinX, MinY: from, MaxX: r.MaxX, MaxY: to}
}
