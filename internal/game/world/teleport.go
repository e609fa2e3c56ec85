package world

import (
	"github.com/lucarv/mezzanine/pkg/math"
)

// Portal is an axis-aligned trigger box paired with an absolute
// destination. A portal fires whenever the camera position falls inside
// the box, regardless of travel direction; it has no memory.
type Portal struct {
	Name     string
	Min, Max math.Vec3
	Dest     math.Vec3
}

// Contains reports whether p lies inside the trigger box (inclusive).
func (t Portal) Contains(p math.Vec3) bool {
	return math.Between(p.X, t.Min.X, t.Max.X) &&
		math.Between(p.Y, t.Min.Y, t.Max.Y) &&
		math.Between(p.Z, t.Min.Z, t.Max.Z)
}

// PortalTable checks portals in order; the first match wins.
type PortalTable []Portal

// Apply returns the destination of the first portal containing p. The
// relocation is absolute, not a delta.
func (t PortalTable) Apply(p math.Vec3) (math.Vec3, bool) {
	for _, portal := range t {
		if portal.Contains(p) {
			return portal.Dest, true
		}
	}
	return p, false
}

// Portals are the two stair-landing triggers connecting the floors.
var Portals = PortalTable{
	{
		Name: "stairs-up",
		Min:  math.Vec3{X: -11.5, Y: -2.01, Z: -2.5},
		Max:  math.Vec3{X: -7.5, Y: -1.99, Z: -1.5},
		Dest: math.Vec3{X: 1.86, Y: -7.54, Z: -9.9},
	},
	{
		Name: "stairs-down",
		Min:  math.Vec3{X: -3.32, Y: -7.55, Z: -10},
		Max:  math.Vec3{X: -2.32, Y: -7.53, Z: -7.5},
		Dest: math.Vec3{X: -9.35, Y: -2, Z: 0},
	},
}
