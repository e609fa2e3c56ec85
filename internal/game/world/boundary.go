// Package world implements the walkable volume of the mezzanine
// building and the navigation controller that keeps the camera inside
// it. All coordinates are camera (inverted) coordinates.
package world

import (
	"github.com/lucarv/mezzanine/pkg/math"
)

// Outer building footprint.
const (
	footprintMinX float32 = -11.5
	footprintMaxX float32 = 11.5
	footprintMinZ float32 = -10
	footprintMaxZ float32 = 10
)

// The mezzanine level is active below this camera height.
const mezzanineY float32 = -7.53

// Mezzanine sub-region extents. The stairwell cutout spans
// x in [holeMinX, holeMaxX], z in [stairFrontMaxZ, farStretchMinZ].
const (
	stairFrontMaxZ float32 = -4.64
	farStretchMinZ float32 = 4.76
	holeMinX       float32 = -5.45
	holeMaxX       float32 = 4.5
	farStretchMinX float32 = -2.6
)

// region names the mezzanine z-bands. Bands are evaluated in priority
// order; a z value matching none of them is regionNone and passes
// through the second clamp stage untouched.
type region int

const (
	regionNone       region = iota // fallthrough: no named band matched
	regionStairFront               // z band in front of the stairs
	regionFarStretch               // z band opposite the stairs
	regionHoleFront                // central z band along the cutout
)

// regionFor selects the mezzanine z-band for a camera z.
func regionFor(z float32) region {
	switch {
	case math.Between(z, footprintMinZ, stairFrontMaxZ):
		return regionStairFront
	case math.Between(z, farStretchMinZ, footprintMaxZ):
		return regionFarStretch
	case math.Between(z, stairFrontMaxZ, farStretchMinZ):
		return regionHoleFront
	default:
		return regionNone
	}
}

// Constrain clamps a camera position into the walkable volume. The
// outer footprint always applies; below mezzanineY the active z-band
// adds an x clamp and, beside the cutout, a z re-clamp that prevents
// stepping over the hole. Constrain is pure and idempotent.
func Constrain(p math.Vec3) math.Vec3 {
	p.X = math.Clamp(p.X, footprintMinX, footprintMaxX)
	p.Z = math.Clamp(p.Z, footprintMinZ, footprintMaxZ)

	if p.Y >= mezzanineY {
		// Ground floor: unobstructed within the footprint.
		return p
	}

	switch regionFor(p.Z) {
	case regionStairFront:
		p.X = math.Clamp(p.X, holeMinX, footprintMaxX)
		if math.Between(p.X, holeMinX, holeMaxX) {
			p.Z = math.Clamp(p.Z, footprintMinZ, stairFrontMaxZ)
		}
	case regionFarStretch:
		p.X = math.Clamp(p.X, farStretchMinX, footprintMaxX)
		if math.Between(p.X, farStretchMinX, holeMaxX) {
			p.Z = math.Clamp(p.Z, farStretchMinZ, footprintMaxZ)
		}
	case regionHoleFront:
		// The only way to stand in this band is on the far side
		// of the cutout.
		p.X = math.Clamp(p.X, holeMaxX, footprintMaxX)
	case regionNone:
		// Uncovered band: position passes through unclamped.
	}

	return p
}
