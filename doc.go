// Package xyplot is the engine of an interactive 2D plot of point clouds,
// functions and editable splines.
//
// It uses and extends gonum.org/v1/plot: styles are gonum draw styles,
// data sets are plotter.XYers and the tick algorithm is also available as
// a plot.Ticker. Drawing itself is left to a backend, see package vgdraw.
//
// # Real space and image space
//
// The user's data live in real space, an arbitrary floating point
// domain. The visible part of real space is a RealRect. A Mapper maps
// this rectangle onto the pixels of a Viewport:
//
//   - real xMin maps to pixel column 0, xMax to column width-1
//   - real yMax maps to pixel row 0, yMin to row height-1
//
// The y-axis is inverted as image rows grow downwards.
//
// A RealRect with zero, negative or non-finite width or height is invalid.
// Mapping through an invalid rectangle yields NaN or Inf and nothing is
// drawn; an invalid rectangle is never an error.
//
// # Interaction
//
// A Controller turns mouse, wheel and keyboard events into pans and zooms
// of the visible RealRect and into edits of the current spline:
//
//   - left drag              pan
//   - right drag             rubber-band zoom
//   - wheel                  zoom, keeping the point under the cursor fixed
//   - double right click     autozoom to all point series
//   - left drag on a point   move a point of the current spline
//   - ctrl + left click      add or remove a point of the current spline
//   - arrows, +, -           pan and zoom by fixed steps
//   - home                   autozoom
//
// Every change marks the plot dirty; Frame hands out a freshly built
// RenderPlan at most once per call.
package xyplot
