// SPDX-License-Identifier: EPL-2.0

// Package envelope implements the time-keyed control curve shared by the
// legacy binaural format and the current preset model.
//
// An Envelope is a set of control points ordered by time. Each point carries
// a value and a curvature; the curvature is the exponent used when moving
// from that point toward the next one:
//
//	env := &envelope.Envelope{}
//	_ = env.SetPoint(0, 0, 2) // quadratic ease into the next point
//	_ = env.SetPoint(10, 1, 1)
//	env.ValueAt(5)            // 0.25
//
// # Edge Policy
//
// Querying outside the defined points follows fixed rules:
//   - An empty envelope is 0 everywhere.
//   - A single-point envelope is flat at that point's value everywhere.
//   - Before the first point the envelope reads as 0.
//   - At or after the last point the envelope holds the last value.
//
// # Storage
//
// Points live in a sorted slice. Lookups are binary searches; inserting at a
// time that already holds a point replaces it, so there is never more than
// one point per time value.
//
// Envelopes are not safe for concurrent mutation. Use Clone to hand a
// snapshot to another goroutine or to an undo history.
package envelope
