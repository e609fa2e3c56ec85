package game

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/lucarv/mezzanine/internal/game/world"
)

func TestCommandFor(t *testing.T) {
	cases := []struct {
		key  sdl.Scancode
		want world.Command
	}{
		{sdl.SCANCODE_W, world.MoveForward},
		{sdl.SCANCODE_S, world.MoveBackward},
		{sdl.SCANCODE_A, world.StrafeLeft},
		{sdl.SCANCODE_D, world.StrafeRight},
		{sdl.SCANCODE_Q, world.Quit},
		{sdl.SCANCODE_X, world.CommandUnknown},
		{sdl.SCANCODE_SPACE, world.CommandUnknown},
	}
	for _, c := range cases {
		if got := commandFor(c.key); got != c.want {
			t.Errorf("commandFor(%v) = %v, want %v", c.key, got, c.want)
		}
	}
}
