package renderer

import "testing"

func TestAspect(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   float32
	}{
		{"4:3", 800, 600, 800.0 / 600.0},
		{"16:9", 1920, 1080, 1920.0 / 1080.0},
		{"square", 512, 512, 1},
		// A zero-height window must be treated as height 1.
		{"zero height", 800, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aspect(tt.width, tt.height); got != tt.want {
				t.Errorf("Aspect(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
