// Package renderer draws the scene with the fixed-function pipeline.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/lucarv/mezzanine/internal/scene"
	"github.com/lucarv/mezzanine/pkg/math"
	"github.com/lucarv/mezzanine/pkg/wavefront"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // Vertical field of view, degrees
}

// Lighting and material constants for the scene.
var (
	ambientLight  = [4]float32{0.2, 0.2, 0.2, 1.0}
	diffuseLight  = [4]float32{0.7, 0.7, 0.7, 1.0}
	specularLight = [4]float32{1.0, 1.0, 1.0, 1.0}
	lightPosition = [4]float32{0, 100, 0, 1.0}
	specularity   = [4]float32{1.0, 1.0, 1.0, 1.0}
)

const shininess = 60

// Per-object colors, keyed by scene-object name.
var colors = map[string][3]float32{
	"bottom": {0.5, 0.5, 1},
	"stairs": {0.5, 0.5, 0.5},
	"top":    {0.5, 1, 0.5},
}

// Renderer issues the draw calls for the registered meshes.
type Renderer struct {
	fov        float32
	projection math.Mat4
}

// New initializes OpenGL state: lighting, material, depth test. The
// window's GL context must already be current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	r := &Renderer{fov: cfg.FOV}

	gl.Materialfv(gl.FRONT, gl.SPECULAR, &specularity[0])
	gl.Materiali(gl.FRONT, gl.SHININESS, shininess)

	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.ShadeModel(gl.SMOOTH)
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &ambientLight[0])

	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &ambientLight[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuseLight[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &specularLight[0])
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &lightPosition[0])

	gl.Enable(gl.COLOR_MATERIAL)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.DEPTH_TEST)

	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Aspect returns the aspect ratio for a window size. A zero height is
// treated as one to avoid division by zero on degenerate resizes.
func Aspect(width, height int) float32 {
	if height == 0 {
		height = 1
	}
	return float32(width) / float32(height)
}

// Resize recomputes the viewport and perspective projection.
func (r *Renderer) Resize(width, height int) {
	if height == 0 {
		height = 1
	}
	gl.Viewport(0, 0, int32(width), int32(height))

	r.projection = math.Perspective(math.Radians(r.fov), Aspect(width, height), 0.1, 500)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(r.projection.Ptr())
}

// Draw clears the frame, uploads the view transform, and submits every
// registered mesh with its object color.
func (r *Renderer) Draw(registry *scene.Registry, view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(view.Ptr())

	for _, name := range []string{"bottom", "stairs", "top"} {
		c := colors[name]
		gl.Color3f(c[0], c[1], c[2])
		submit(registry.MustGet(name))
	}
}

// submit issues one quad primitive per face, each vertex paired with
// its resolved normal, in face order then per-face vertex order.
func submit(m *wavefront.Mesh) {
	gl.Begin(gl.QUADS)
	for _, f := range m.Faces {
		for j := 0; j < 4; j++ {
			n := m.NormalAt(f.Normal[j])
			v := m.VertexAt(f.Vertex[j])
			gl.Normal3f(n.X, n.Y, n.Z)
			gl.Vertex3f(v.X, v.Y, v.Z)
		}
	}
	gl.End()
}
