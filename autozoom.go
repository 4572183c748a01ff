package xyplot

import (
	"github.com/vdobler/xyplot/data"
)

// ComputeBounds returns the smallest rectangle containing all points of
// all series. It reports false if there are no points or if all points
// share one x or one y value; such a result must not be applied.
// No padding is added.
func ComputeBounds(series ...*data.PointSeries) (RealRect, bool) {
	x, y := unsetInterval(), unsetInterval()
	for _, s := range series {
		if s == nil || s.Len() == 0 {
			continue
		}
		xmin, xmax, ymin, ymax := data.Range(s)
		if xmin > xmax || ymin > ymax {
			continue // only NaNs
		}
		x.Update(xmin, xmax)
		y.Update(ymin, ymax)
	}
	r := RealRect{XMin: x.Min, XMax: x.Max, YMin: y.Min, YMax: y.Max}
	if r.IsInvalid() {
		return RealRect{}, false
	}
	return r, true
}
