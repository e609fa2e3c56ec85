package world

import (
	"go.uber.org/zap"

	"github.com/lucarv/mezzanine/internal/config"
	"github.com/lucarv/mezzanine/internal/engine/camera"
	"github.com/lucarv/mezzanine/pkg/math"
)

// Command is a navigation input.
type Command int

const (
	CommandUnknown Command = iota
	MoveForward
	MoveBackward
	StrafeLeft
	StrafeRight
	Quit
)

// Outcome reports what a navigation step requires of the caller.
type Outcome struct {
	Redraw bool
	Quit   bool
}

// Navigator owns the camera and drives it through the per-event
// sequence: proposed move, boundary correction, teleport check. It is
// single-threaded; a step commits position and view transform before
// the next event is processed.
type Navigator struct {
	cam     *camera.Camera
	portals PortalTable
	input   config.InputConfig
	log     *zap.Logger

	prevX int
}

// NewNavigator creates a navigator for the given camera.
func NewNavigator(cam *camera.Camera, input config.InputConfig, log *zap.Logger) *Navigator {
	return &Navigator{
		cam:     cam,
		portals: Portals,
		input:   input,
		log:     log,
	}
}

// Camera returns the navigated camera.
func (n *Navigator) Camera() *camera.Camera {
	return n.cam
}

// Step processes one keyboard command. Movement happens on the XZ
// plane along the freshly derived forward vector; the y component is
// never touched by walking. key names the raw key for the unknown case.
func (n *Navigator) Step(cmd Command, key string) Outcome {
	forward := n.cam.Forward()

	switch cmd {
	case MoveForward:
		n.cam.Translate(math.Vec3{X: forward.X, Z: forward.Z})
	case MoveBackward:
		n.cam.Translate(math.Vec3{X: -forward.X, Z: -forward.Z})
	case StrafeLeft:
		n.cam.Translate(math.Vec3{X: forward.Z, Z: -forward.X})
	case StrafeRight:
		n.cam.Translate(math.Vec3{X: -forward.Z, Z: forward.X})
	case Quit:
		return Outcome{Quit: true}
	default:
		n.log.Info("unhandled key", zap.String("key", key))
		return Outcome{}
	}

	n.settle()

	n.log.Debug("camera",
		zap.Float32("x", n.cam.Position.X),
		zap.Float32("y", n.cam.Position.Y),
		zap.Float32("z", n.cam.Position.Z),
		zap.Float32("rotation", n.cam.Yaw),
	)

	return Outcome{Redraw: true}
}

// Look processes one horizontal pointer sample. The pointer moving left
// of its previous sample turns the camera left, anything else turns it
// right; the rotation per sample is fixed, independent of how far the
// pointer moved. warp is true when the pointer left the usable band and
// must be returned to the home coordinate (warping never moves the
// camera, it only prevents pointer runaway).
func (n *Navigator) Look(x int) (warp bool) {
	if x < n.prevX {
		n.cam.Turn(camera.TurnLeft, n.input.MouseSensitivity)
	} else {
		n.cam.Turn(camera.TurnRight, n.input.MouseSensitivity)
	}

	n.settle()

	n.prevX = x
	return x > n.input.WarpMaxX || x < n.input.WarpMinX
}

// settle applies boundary correction and then the teleport check,
// committing both to the camera.
func (n *Navigator) settle() {
	n.cam.Relocate(Constrain(n.cam.Position))

	if dest, ok := n.portals.Apply(n.cam.Position); ok {
		n.log.Info("teleport",
			zap.Float32("x", dest.X),
			zap.Float32("y", dest.Y),
			zap.Float32("z", dest.Z),
		)
		n.cam.Relocate(dest)
	}
}
