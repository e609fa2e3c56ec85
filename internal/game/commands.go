package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lucarv/mezzanine/internal/game/world"
)

// commandFor maps a key to its navigation command. Unmapped keys yield
// CommandUnknown; the navigator reports them by name.
func commandFor(key sdl.Scancode) world.Command {
	switch key {
	case sdl.SCANCODE_W:
		return world.MoveForward
	case sdl.SCANCODE_S:
		return world.MoveBackward
	case sdl.SCANCODE_A:
		return world.StrafeLeft
	case sdl.SCANCODE_D:
		return world.StrafeRight
	case sdl.SCANCODE_Q:
		return world.Quit
	default:
		return world.CommandUnknown
	}
}
