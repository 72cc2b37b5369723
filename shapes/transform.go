// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shapes

import "github.com/galvanized/raytrace/math/lin"

// Transform carries rays, points, and normals between world space
// and a shape's object space. Composition order is fixed: scale is
// applied first, then rotate, then translate, so the forward
// (world-to-object) matrix is scale⁻¹·rotate⁻¹ (acting on a column
// vector, rotate⁻¹ applies first) and translate is handled separately
// as a vector subtract. The cached inverse matrix (rotate·scale)
// carries object-space normals back to world space;
// it is a surrogate for a true inverse-transpose, exact only under
// uniform scale, same as the system this was ported from.
//
// A Transform with none of translate/rotate/scale set is the
// identity and short-circuits every method to a cheap copy.
type Transform struct {
	identity  bool
	translate *lin.V3
	forward   *lin.M3 // world ray/point -> object space.
	inverse   *lin.M3 // object normal -> world space.
}

// Option configures a Transform at construction time.
type Option func(*options)

type options struct {
	translate      *lin.V3
	scale          *lin.V3
	rotateAxis     *lin.V3
	rotateDegrees  float64
	hasTranslate   bool
	hasScale       bool
	hasRotate      bool
}

// Translate offsets the shape by (x,y,z) in world units.
func Translate(x, y, z float64) Option {
	return func(o *options) { o.hasTranslate = true; o.translate = lin.NewV3S(x, y, z) }
}

// Scale stretches the shape along each axis in its local frame,
// applied before rotation.
func Scale(x, y, z float64) Option {
	return func(o *options) { o.hasScale = true; o.scale = lin.NewV3S(x, y, z) }
}

// Rotate rotates the shape by degrees about axis, applied after
// scale and before translate.
func Rotate(axis *lin.V3, degrees float64) Option {
	return func(o *options) {
		o.hasRotate = true
		o.rotateAxis = axis
		o.rotateDegrees = degrees
	}
}

// New builds a Transform from the given options. With no options at
// all it returns the identity Transform.
func New(opts ...Option) *Transform {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}
	if !o.hasTranslate && !o.hasScale && !o.hasRotate {
		return &Transform{identity: true}
	}

	scaleInv := lin.M3I
	scaleFwd := lin.M3I
	if o.hasScale {
		sx, sy, sz := o.scale.X, o.scale.Y, o.scale.Z
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		if sz == 0 {
			sz = 1
		}
		scaleInv = (&lin.M3{}).SetS(1/sx, 0, 0, 0, 1/sy, 0, 0, 0, 1/sz)
		scaleFwd = (&lin.M3{}).SetS(sx, 0, 0, 0, sy, 0, 0, 0, sz)
	}
	rotFwd := lin.M3I
	rotInv := lin.M3I
	if o.hasRotate {
		axis := lin.NewV3().Set(o.rotateAxis).Unit()
		rotFwd = (&lin.M3{}).SetAa(axis.X, axis.Y, axis.Z, lin.Rad(o.rotateDegrees))
		rotInv = (&lin.M3{}).Inv(rotFwd)
	}

	forward := (&lin.M3{}).Mult(scaleInv, rotInv) // scale^-1 * rotate^-1
	inverse := (&lin.M3{}).Mult(rotFwd, scaleFwd)  // rotate * scale

	t := &Transform{forward: forward, inverse: inverse}
	if o.hasTranslate {
		t.translate = o.translate
	}
	return t
}

// ToObject carries a world ray into object space.
func (t *Transform) ToObject(r *Ray) *Ray {
	if t == nil || t.identity {
		return r
	}
	origin := lin.NewV3().Set(r.Origin)
	if t.translate != nil {
		origin.Sub(origin, t.translate)
	}
	origin.MultMv(t.forward, origin)
	dir := lin.NewV3().MultMv(t.forward, r.Dir)
	return &Ray{Origin: origin, Dir: dir, Shadow: r.Shadow}
}

// ToObjectPoint carries a world-space point into object space, the
// point equivalent of ToObject's ray-origin handling. Used outside
// this package by lights that need to test a world point against a
// shape-like region defined in object space (a spotlight's cylinder,
// a conical light's cone).
func (t *Transform) ToObjectPoint(p *lin.V3) *lin.V3 {
	if t == nil || t.identity {
		return lin.NewV3().Set(p)
	}
	q := lin.NewV3().Set(p)
	if t.translate != nil {
		q.Sub(q, t.translate)
	}
	q.MultMv(t.forward, q)
	return q
}

// NormalToWorld carries an object-space normal back to world space
// and normalizes it. Translation never applies to normals.
func (t *Transform) NormalToWorld(n *lin.V3) *lin.V3 {
	if t == nil || t.identity {
		return lin.NewV3().Set(n).Unit()
	}
	w := lin.NewV3().MultMv(t.inverse, n)
	return w.Unit()
}

// PointToWorld carries an object-space AABB corner (or any object
// point that is not a ray endpoint) back to world space: undo the
// forward matrix — which is exactly the cached inverse matrix, since
// forward is scale⁻¹·rotate⁻¹ and its inverse is rotate·scale — then
// undo the translate.
func (t *Transform) PointToWorld(p *lin.V3) *lin.V3 {
	if t == nil || t.identity {
		return lin.NewV3().Set(p)
	}
	w := lin.NewV3().MultMv(t.inverse, p)
	if t.translate != nil {
		w.Add(w, t.translate)
	}
	return w
}

// Identity reports whether t applies no change at all.
func (t *Transform) Identity() bool { return t == nil || t.identity }
