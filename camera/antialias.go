// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"math"
	"math/rand"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/scene"
)

// Antialias selects a pixel's sampling strategy.
type Antialias int

const (
	NoAA Antialias = iota
	GridAA
	StochasticAA
	EdgeDetectAA
)

// defaultEdgeThreshold is the per-channel colour delta above which
// edge-detect treats a pixel as needing supersampling.
const defaultEdgeThreshold = 0.3

// AntialiasSettings configures the active strategy. X and Y give the
// grid lattice size (GridAA) or, multiplied together, the sample
// count (StochasticAA and EdgeDetectAA's fallback). Stochastic picks
// EdgeDetectAA's fallback strategy. EdgeThreshold defaults to 0.3.
type AntialiasSettings struct {
	Mode          Antialias
	X, Y          int
	Stochastic    bool
	EdgeThreshold float64
}

type pixelCoord struct{ x, y int }

// edgeCell is one entry of a view's edge_detection_map: whether the
// pixel at this coordinate was itself supersampled, and its final
// colour.
type edgeCell struct {
	aa bool
	c  *colour.Colour
}

// renderPixel dispatches to the view's configured strategy for one
// physical pixel at view-plane coordinate (vx, vy).
func (v *View) renderPixel(scn *scene.Scene, px, py int, vx, vy, xStep, yStep float64) *colour.Colour {
	switch v.Antialias.Mode {
	case GridAA:
		return v.sampleGrid(scn, vx, vy, xStep, yStep)
	case StochasticAA:
		return v.sampleStochastic(scn, vx, vy, xStep, yStep)
	case EdgeDetectAA:
		return v.edgeDetectPixel(scn, px, py, vx, vy, xStep, yStep, false)
	default:
		return v.shadePrimary(scn, vx, vy)
	}
}

// sampleGrid averages a deterministic N*M lattice of sub-pixel
// samples spanning the pixel's view-rect cell.
func (v *View) sampleGrid(scn *scene.Scene, vx, vy, xStep, yStep float64) *colour.Colour {
	nx, ny := v.Antialias.X, v.Antialias.Y
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	subX, subY := xStep/float64(nx), yStep/float64(ny)

	total := colour.New(0, 0, 0)
	for i := 0; i < nx; i++ {
		sx := vx + (float64(i)+0.5)*subX
		for j := 0; j < ny; j++ {
			sy := vy + (float64(j)+0.5)*subY
			total.Add(total, v.shadePrimary(scn, sx, sy))
		}
	}
	return total.Scale(total, 1.0/float64(nx*ny))
}

// sampleStochastic averages X*Y uniform random samples inside the
// pixel's view-rect cell.
func (v *View) sampleStochastic(scn *scene.Scene, vx, vy, xStep, yStep float64) *colour.Colour {
	n := v.Antialias.X * v.Antialias.Y
	if n < 1 {
		n = 1
	}
	total := colour.New(0, 0, 0)
	for i := 0; i < n; i++ {
		sx := vx + rand.Float64()*xStep
		sy := vy + rand.Float64()*yStep
		total.Add(total, v.shadePrimary(scn, sx, sy))
	}
	return total.Scale(total, 1.0/float64(n))
}

// edgeDetectPixel renders the single non-AA sample, compares it
// against the eight already-rendered neighbours recorded in
// v.edgeMap, and re-renders with the configured fallback strategy
// when any channel differs by more than the threshold. force skips
// the neighbour check — used by drainRerender, whose entries were
// already flagged as needing AA by an earlier pixel's pass. This
// strategy is only ever driven by renderSequential/drainRerender, so
// edgeMap/rerender need no locking despite being read-write shared
// state (see the MaxProcesses doc comment on View).
func (v *View) edgeDetectPixel(scn *scene.Scene, px, py int, vx, vy, xStep, yStep float64, force bool) *colour.Colour {
	clr := v.shadePrimary(scn, vx, vy)

	threshold := v.Antialias.EdgeThreshold
	if threshold == 0 {
		threshold = defaultEdgeThreshold
	}
	neighbours := v.edgeNeighbours(px, py)

	doAA := force
	if !force {
		for _, n := range neighbours {
			if cell, ok := v.edgeLookup(n.x, n.y); ok && colourDelta(clr, cell.c) > threshold {
				doAA = true
				break
			}
		}
	}

	if doAA {
		var aa *colour.Colour
		if v.Antialias.Stochastic {
			aa = v.sampleStochastic(scn, vx, vy, xStep, yStep)
		} else {
			aa = v.sampleGrid(scn, vx, vy, xStep, yStep)
		}
		if force {
			clr = aa
		} else {
			count := float64(v.Antialias.X * v.Antialias.Y)
			if count < 1 {
				count = 1
			}
			blended := colour.New(0, 0, 0).Scale(aa, count/(count+1))
			blended.Add(blended, colour.New(0, 0, 0).Scale(clr, 1/(count+1)))
			clr = blended
		}
		for _, n := range neighbours {
			cell, ok := v.edgeLookup(n.x, n.y)
			if !ok || cell.aa {
				continue
			}
			if colourDelta(clr, cell.c) > threshold {
				v.rerender = append(v.rerender, n)
			}
		}
	}

	v.edgeStore(px, py, edgeCell{aa: doAA, c: clr})
	return clr
}

// drainRerender forces a supersampled re-render of every pixel
// edgeDetectPixel flagged, in FIFO order; re-rendering a pixel can
// flag further neighbours, so this continues until the queue empties.
func (v *View) drainRerender(scn *scene.Scene) {
	xStep, yStep := v.pixelSteps()
	for len(v.rerender) > 0 {
		n := v.rerender[0]
		v.rerender = v.rerender[1:]
		vx, vy := v.viewPlanePoint(n.x, n.y, xStep, yStep)
		clr := v.edgeDetectPixel(scn, n.x, n.y, vx, vy, xStep, yStep, true)
		v.Output.SetPixel(n.x, n.y, clr)
	}
}

func (v *View) edgeNeighbours(px, py int) []pixelCoord {
	var out []pixelCoord
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := px+dx, py+dy
			if nx < v.Physical.Left || nx >= v.Physical.Right || ny < v.Physical.Top || ny >= v.Physical.Bottom {
				continue
			}
			out = append(out, pixelCoord{nx, ny})
		}
	}
	return out
}

func (v *View) edgeLookup(x, y int) (edgeCell, bool) {
	row, ok := v.edgeMap[x]
	if !ok {
		return edgeCell{}, false
	}
	cell, ok := row[y]
	return cell, ok
}

func (v *View) edgeStore(x, y int, cell edgeCell) {
	row, ok := v.edgeMap[x]
	if !ok {
		row = map[int]edgeCell{}
		v.edgeMap[x] = row
	}
	row[y] = cell
}

// colourDelta returns the largest single-channel absolute difference
// between a and b, matching the "any channel differs by more than"
// edge-detect rule rather than a summed difference across channels.
func colourDelta(a, b *colour.Colour) float64 {
	return math.Max(math.Abs(a.R-b.R), math.Max(math.Abs(a.G-b.G), math.Abs(a.B-b.B)))
}
