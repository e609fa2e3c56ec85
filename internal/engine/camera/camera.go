// Package camera provides the walkthrough camera.
//
// The camera follows an inverted convention: it is logically fixed at
// the origin and the world moves around it, so Position stores the
// negation of the true world position and every world transform is the
// accumulated modelview matrix.
package camera

import (
	"github.com/lucarv/mezzanine/pkg/math"
)

// TurnDir selects a yaw rotation direction.
type TurnDir int

const (
	TurnLeft TurnDir = iota
	TurnRight
)

// Camera holds the navigation state: inverted position, yaw in degrees,
// and the active view (modelview) transform. The view matrix is
// maintained in software and uploaded by the renderer each frame.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	View     math.Mat4
}

// Start position and look-at target, inverted convention.
var (
	startPosition = math.Vec3{X: 0, Y: -2, Z: 0}
	startTarget   = math.Vec3{X: 0, Y: 2, Z: 20}
)

// New returns a camera at the walkthrough start position, looking down
// the initial corridor.
func New() *Camera {
	c := &Camera{
		Position: startPosition,
		Yaw:      0,
	}
	c.View = math.LookAt(c.Position.Neg(), startTarget, math.Vec3{X: 0, Y: 1, Z: 0})
	return c
}

// Forward derives the camera's forward direction from the view
// transform's third basis row, with x negated for the inverted
// convention. It is a pure read of current orientation and must be
// recomputed after every rotation, never cached.
func (c *Camera) Forward() math.Vec3 {
	return math.Vec3{X: -c.View[8], Y: c.View[9], Z: c.View[10]}
}

// Translate moves the camera by d (inverted coordinates) and applies
// the same translation to the view transform.
func (c *Camera) Translate(d math.Vec3) {
	c.Position = c.Position.Add(d)
	c.View = c.View.Mul(math.TranslateVec(d))
}

// Turn rotates yaw by one degree step in the given direction and
// applies the rotation to the view transform, centered on the camera:
// translate by -Position, rotate, translate back. Yaw wraps within
// [0, 360): past 359 resets to 0, below 0 resets to 359. The rotation
// applied to the transform uses the configured sensitivity, not the
// bookkeeping degree step.
func (c *Camera) Turn(dir TurnDir, sensitivity float32) {
	angle := math.Radians(sensitivity)
	switch dir {
	case TurnLeft:
		if c.Yaw >= 359 {
			c.Yaw = 0
		} else {
			c.Yaw++
		}
		angle = -angle
	case TurnRight:
		if c.Yaw <= 0 {
			c.Yaw = 359
		} else {
			c.Yaw--
		}
	}

	c.View = c.View.
		Mul(math.TranslateVec(c.Position.Neg())).
		Mul(math.RotateY(angle)).
		Mul(math.TranslateVec(c.Position))
}

// Relocate sets the camera position absolutely, shifting the view
// transform by the correction delta. Used by the boundary constraint
// and teleport steps.
func (c *Camera) Relocate(p math.Vec3) {
	c.View = c.View.
		Mul(math.TranslateVec(c.Position.Neg())).
		Mul(math.TranslateVec(p))
	c.Position = p
}
