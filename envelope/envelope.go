// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"cmp"
	"slices"

	"github.com/ossrs/go-oryx-lib/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ik5/entrain/utils"
)

// Linear is the curvature of a straight segment.
const Linear = 1.0

// ControlPoint is one (time, value, curvature) sample. Curvature applies to
// the segment that starts at this point.
type ControlPoint struct {
	T         float64
	Value     float64
	Curvature float64
}

// Envelope is an ordered, time-keyed set of control points.
// The zero value is an empty envelope ready to use.
type Envelope struct {
	points []ControlPoint
}

// New returns an envelope holding the given points. Points sharing a time
// collapse to the last one given.
func New(points ...ControlPoint) (*Envelope, error) {
	e := &Envelope{points: make([]ControlPoint, 0, len(points))}
	for _, p := range points {
		if err := e.SetPoint(p.T, p.Value, p.Curvature); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// NewFlat returns an envelope with a single linear point at t=0.
// This is the shape the preset model starts every envelope with.
func NewFlat(v float64) *Envelope {
	return &Envelope{points: []ControlPoint{{T: 0, Value: v, Curvature: Linear}}}
}

func (e *Envelope) search(t float64) (int, bool) {
	return slices.BinarySearchFunc(e.points, t, func(p ControlPoint, t float64) int {
		return cmp.Compare(p.T, t)
	})
}

// CheckPoint reports whether a point with these fields can be stored: every
// field finite and t not negative.
func CheckPoint(t, v, c float64) error {
	if !utils.IsFinite(t) || !utils.IsFinite(v) || !utils.IsFinite(c) {
		return errors.Wrapf(ErrNotFinite, "t=%v, value=%v, curvature=%v", t, v, c)
	}
	if t < 0 {
		return errors.Wrapf(ErrNegativeTime, "t=%v", t)
	}

	return nil
}

// SetPoint inserts a point at t, replacing any point already there.
func (e *Envelope) SetPoint(t, value, curvature float64) error {
	if err := CheckPoint(t, value, curvature); err != nil {
		return err
	}

	p := ControlPoint{T: t, Value: value, Curvature: curvature}
	i, found := e.search(t)
	if found {
		e.points[i] = p
		return nil
	}

	e.points = slices.Insert(e.points, i, p)
	return nil
}

// AddPoint inserts a linear point at t.
func (e *Envelope) AddPoint(t, value float64) error {
	return e.SetPoint(t, value, Linear)
}

// RemovePoint deletes the point at exactly t and reports whether one existed.
func (e *Envelope) RemovePoint(t float64) bool {
	i, found := e.search(t)
	if !found {
		return false
	}

	e.points = slices.Delete(e.points, i, i+1)
	return true
}

// RemovePointAt deletes the i-th point.
func (e *Envelope) RemovePointAt(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}

	e.points = slices.Delete(e.points, i, i+1)
	return nil
}

// ClearPoints removes every point.
func (e *Envelope) ClearPoints() {
	e.points = e.points[:0]
}

// PointCount returns the number of points.
func (e *Envelope) PointCount() int {
	return len(e.points)
}

func (e *Envelope) checkIndex(i int) error {
	if i < 0 || i >= len(e.points) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, count %d", i, len(e.points))
	}

	return nil
}

// Point returns the i-th point in time order.
func (e *Envelope) Point(i int) (ControlPoint, error) {
	if err := e.checkIndex(i); err != nil {
		return ControlPoint{}, err
	}

	return e.points[i], nil
}

// Points returns a copy of all points in time order.
func (e *Envelope) Points() []ControlPoint {
	return slices.Clone(e.points)
}

// SetVal changes the value of the i-th point, keeping its time and curvature.
func (e *Envelope) SetVal(i int, value float64) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	p := e.points[i]
	if err := CheckPoint(p.T, value, p.Curvature); err != nil {
		return err
	}

	e.points[i].Value = value
	return nil
}

// SetT moves the i-th point to time t. If another point already sits at t it
// is replaced, and the point takes its new place in time order.
func (e *Envelope) SetT(i int, t float64) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}
	p := e.points[i]
	if err := CheckPoint(t, p.Value, p.Curvature); err != nil {
		return err
	}

	e.points = slices.Delete(e.points, i, i+1)
	return e.SetPoint(t, p.Value, p.Curvature)
}

// Start is the time of the first point, 0 when empty.
func (e *Envelope) Start() float64 {
	if len(e.points) == 0 {
		return 0
	}

	return e.points[0].T
}

// End is the time of the last point, 0 when empty.
func (e *Envelope) End() float64 {
	if len(e.points) == 0 {
		return 0
	}

	return e.points[len(e.points)-1].T
}

// Length is End minus Start.
func (e *Envelope) Length() float64 {
	return e.End() - e.Start()
}

// floor returns the latest point at or before t, or a synthetic zero point
// at t itself when t precedes the first point. Requires a non-empty envelope.
func (e *Envelope) floor(t float64) ControlPoint {
	if t < e.points[0].T {
		return ControlPoint{T: t, Value: 0, Curvature: Linear}
	}

	i, found := e.search(t)
	if found {
		return e.points[i]
	}

	return e.points[i-1]
}

// ceil returns the earliest point at or after t, or the last point when t is
// at or beyond it. Requires a non-empty envelope.
func (e *Envelope) ceil(t float64) ControlPoint {
	last := e.points[len(e.points)-1]
	if t >= last.T {
		return last
	}

	i, _ := e.search(t)
	return e.points[i]
}

// ValueAt evaluates the envelope at time t.
func (e *Envelope) ValueAt(t float64) float64 {
	switch len(e.points) {
	case 0:
		return 0
	case 1:
		return e.points[0].Value
	}

	a := e.floor(t)
	b := e.ceil(t)
	if b.T == a.T {
		return a.Value
	}

	return utils.LerpPow(a.Value, b.Value, (t-a.T)/(b.T-a.T), a.Curvature)
}

// Clone returns a deep copy that shares no storage with e.
func (e *Envelope) Clone() *Envelope {
	return &Envelope{points: slices.Clone(e.points)}
}

// Equal reports whether both envelopes hold the same points, comparing every
// field within tol (absolute or relative).
func (e *Envelope) Equal(o *Envelope, tol float64) bool {
	if o == nil || len(e.points) != len(o.points) {
		return false
	}

	for i, p := range e.points {
		q := o.points[i]
		if !scalar.EqualWithinAbsOrRel(p.T, q.T, tol, tol) ||
			!scalar.EqualWithinAbsOrRel(p.Value, q.Value, tol, tol) ||
			!scalar.EqualWithinAbsOrRel(p.Curvature, q.Curvature, tol, tol) {
			return false
		}
	}

	return true
}
