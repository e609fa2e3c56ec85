package math

// Clamp limits v to the inclusive range [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Between reports whether v lies in the inclusive range [min, max].
func Between(v, min, max float32) bool {
	return v >= min && v <= max
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (Pi / 180)
}

// Pi as float32.
const Pi = 3.14159265358979323846
