// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera implements the sampling driver: primary-ray
// generation for the centered and look-at camera forms, the four
// anti-alias strategies, and the worker-pool pixel dispatcher that
// drives a render from a named Scene view.
package camera

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shading"
	"github.com/galvanized/raytrace/shapes"
)

// Rect is a physical pixel-bounds rectangle: Left/Top inclusive,
// Right/Bottom exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width and Height report the rectangle's pixel extent.
func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// ViewRect is the world-space extent of the image plane a view
// samples, in the same units as scene geometry.
type ViewRect struct {
	Left, Top, Right, Bottom float64
}

// Output is the sink a render writes pixels to. sink.ImageSink
// satisfies this structurally; declared here (rather than imported
// from sink) so camera does not depend on sink — the same one-way
// layering the rest of this module uses elsewhere.
type Output interface {
	SetRectangle(r Rect)
	SetPixel(x, y int, c *colour.Colour)
}

// View is a camera plus its sampling and output configuration. It
// implements scene.Renderer, so Scene.Render dispatches to it by
// name.
type View struct {
	// Eye is the camera position used by the primary-ray formula: for
	// a centered view this is the actual world-space eye; for a
	// look-at view it is the local eye ((0,0,-eyeDistance)) the
	// formula is evaluated against before Rotate carries the result
	// into world space.
	Eye      *lin.V3
	Physical Rect
	ViewRect ViewRect

	// Transform, when set, is applied to every primary ray (centered
	// form only — reuses the same world/object ray transform every
	// shape's intersection test is built on).
	Transform *shapes.Transform

	// Rotate, when set, carries a look-at view's locally generated
	// ray direction into world space; WorldEye is the real origin to
	// emit instead of Eye.
	Rotate   *lin.M3
	WorldEye *lin.V3

	Lighting  *shading.Basic
	Output    Output
	Antialias AntialiasSettings

	// MaxProcesses caps the worker pool: 0 uses runtime.NumCPU(),
	// negative forces a single-threaded render. EdgeDetectAA always
	// renders single-threaded regardless of this setting, since its
	// edge_detection_map and rerender queue are unsynchronized
	// sequential state (see package antialias.go).
	MaxProcesses int

	edgeMap  map[int]map[int]edgeCell
	rerender []pixelCoord
}

// NewView builds a centered camera: eye on the -z axis at eyeZ,
// image plane at z=0, view rectangle in world units.
func NewView(eyeZ float64, physical Rect, view ViewRect, lighting *shading.Basic, output Output) *View {
	return &View{
		Eye:      lin.NewV3S(0, 0, eyeZ),
		Physical: physical,
		ViewRect: view,
		Lighting: lighting,
		Output:   output,
	}
}

// NewViewLookAt builds a look-at camera: eye at eyePoint looking
// toward lookAt, with the image plane eyeDistance in front of the
// eye and viewWidth world units wide (view height follows the
// physical rectangle's aspect ratio). scale stretches the image
// plane away from the eye; rollDegrees rotates it about the line of
// sight. Internally this evaluates the centered-camera formula in a
// local frame (eye at (0,0,-eyeDistance), looking toward +z) and
// carries the result into world space by rotating the look-at
// direction onto +z and translating to eyePoint.
func NewViewLookAt(eyePoint, lookAt *lin.V3, viewWidth, eyeDistance float64, physical Rect, scale, rollDegrees float64, lighting *shading.Basic, output Output) (*View, error) {
	if eyePoint.Aeq(lookAt) {
		return nil, fmt.Errorf("camera: eyePoint and lookAt are the same point")
	}
	if scale == 0 {
		scale = 1
	}
	aspect := float64(physical.Width()) / float64(physical.Height())
	viewHeight := viewWidth / aspect

	v := &View{
		Eye:      lin.NewV3S(0, 0, -eyeDistance),
		WorldEye: lin.NewV3().Set(eyePoint),
		Physical: physical,
		ViewRect: ViewRect{
			Left: -viewWidth / 2, Right: viewWidth / 2,
			Top: -viewHeight / 2, Bottom: viewHeight / 2,
		},
		Lighting: lighting,
		Output:   output,
	}
	v.Rotate = lookAtRotation(eyePoint, lookAt, rollDegrees, scale)
	return v, nil
}

// lookAtRotation returns the matrix that carries a direction built
// in the local +z-forward camera frame into world space: rotate so
// local +z aligns with (lookAt-eye), then scale along the line of
// sight, then roll about it.
func lookAtRotation(eye, lookAt *lin.V3, rollDegrees, scale float64) *lin.M3 {
	axis := lin.NewV3().Sub(lookAt, eye).Unit()
	zAxis := lin.NewV3S(0, 0, 1)

	var rotAxis *lin.V3
	if axis.X == 0 && axis.Y == 0 {
		rotAxis = lin.NewV3().Cross(axis, lin.NewV3S(1, 0, 0))
	} else {
		rotAxis = lin.NewV3().Cross(axis, zAxis).Unit()
	}
	angle := axis.Ang(zAxis)

	lookAtM := (&lin.M3{}).SetAa(rotAxis.X, rotAxis.Y, rotAxis.Z, -angle)
	scaleM := (&lin.M3{}).SetS(1, 0, 0, 0, 1, 0, 0, 0, scale)
	rollM := (&lin.M3{}).SetAa(0, 0, 1, -lin.Rad(rollDegrees))

	m := (&lin.M3{}).Mult(lookAtM, scaleM)
	return m.Mult(m, rollM)
}

// primaryRay builds the ray for view-plane coordinate (vx, vy) per
// the centered formula, then carries it into world space through
// whichever of Rotate/Transform the view was built with.
func (v *View) primaryRay(vx, vy float64) *shapes.Ray {
	localDir := lin.NewV3S(vx-v.Eye.X, vy-v.Eye.Y, -v.Eye.Z)
	switch {
	case v.Rotate != nil:
		dir := lin.NewV3().MultMv(v.Rotate, localDir)
		return shapes.NewRay(lin.NewV3().Set(v.WorldEye), dir)
	case v.Transform != nil:
		return v.Transform.ToObject(shapes.NewRay(lin.NewV3().Set(v.Eye), localDir))
	default:
		return shapes.NewRay(lin.NewV3().Set(v.Eye), localDir)
	}
}

// shadePrimary casts and shades the primary ray through (vx, vy),
// defaulting to black on a miss.
func (v *View) shadePrimary(scn *scene.Scene, vx, vy float64) *colour.Colour {
	ray := v.primaryRay(vx, vy)
	hit, ok := scn.TestIntersect(ray, nil)
	if !ok {
		return colour.New(0, 0, 0)
	}
	return v.Lighting.Shade(scn, scn.Lights(), hit, scn.GetMaxReflections())
}

// pixelSteps returns the world-space size of one physical pixel
// along each axis.
func (v *View) pixelSteps() (xStep, yStep float64) {
	xStep = (v.ViewRect.Right - v.ViewRect.Left) / float64(v.Physical.Width())
	yStep = (v.ViewRect.Bottom - v.ViewRect.Top) / float64(v.Physical.Height())
	return
}

// viewPlanePoint maps a physical pixel coordinate to its view-plane
// point, per the primary-ray generation formula.
func (v *View) viewPlanePoint(px, py int, xStep, yStep float64) (vx, vy float64) {
	vx = v.ViewRect.Left + float64(px-v.Physical.Left)*xStep
	vy = v.ViewRect.Top + float64(py-v.Physical.Top)*yStep
	return
}

// Render fills the output sink with one sample (or more, under
// anti-aliasing) per physical pixel. It satisfies scene.Renderer.
func (v *View) Render(scn *scene.Scene) (interface{}, error) {
	if v.Output == nil {
		return nil, nil
	}
	v.Output.SetRectangle(v.Physical)

	if v.Antialias.Mode == EdgeDetectAA {
		v.edgeMap = map[int]map[int]edgeCell{}
		v.rerender = nil
		v.renderSequential(scn)
		v.drainRerender(scn)
		return v.Output, nil
	}

	if v.MaxProcesses < 0 {
		v.renderSequential(scn)
		return v.Output, nil
	}
	v.renderParallel(scn)
	return v.Output, nil
}

func (v *View) renderSequential(scn *scene.Scene) {
	xStep, yStep := v.pixelSteps()
	for px := v.Physical.Left; px < v.Physical.Right; px++ {
		for py := v.Physical.Top; py < v.Physical.Bottom; py++ {
			vx, vy := v.viewPlanePoint(px, py, xStep, yStep)
			clr := v.renderPixel(scn, px, py, vx, vy, xStep, yStep)
			v.Output.SetPixel(px, py, clr)
		}
	}
}

// renderParallel hands every pixel to a fixed worker pool. Workers
// only read the frozen scene/view and write to disjoint (x,y) sink
// slots, matching the concurrency contract §4.J/§5 require.
func (v *View) renderParallel(scn *scene.Scene) {
	workers := v.MaxProcesses
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	type job struct{ px, py int }
	jobs := make(chan job, 256)

	var wg sync.WaitGroup
	xStep, yStep := v.pixelSteps()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				vx, vy := v.viewPlanePoint(j.px, j.py, xStep, yStep)
				clr := v.renderPixel(scn, j.px, j.py, vx, vy, xStep, yStep)
				v.Output.SetPixel(j.px, j.py, clr)
			}
		}()
	}
	for px := v.Physical.Left; px < v.Physical.Right; px++ {
		for py := v.Physical.Top; py < v.Physical.Bottom; py++ {
			jobs <- job{px, py}
		}
	}
	close(jobs)
	wg.Wait()
}
