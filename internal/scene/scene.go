// Package scene holds the immutable registry of scene meshes.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lucarv/mezzanine/internal/assets"
	"github.com/lucarv/mezzanine/internal/config"
	"github.com/lucarv/mezzanine/internal/logger"
	"github.com/lucarv/mezzanine/pkg/wavefront"
)

// Registry maps scene-object names to their meshes. It is populated
// once at startup and read-only afterwards.
type Registry struct {
	meshes map[string]*wavefront.Mesh
}

// Load imports the fixed set of scene meshes. Any unreadable or invalid
// source fails the whole load; the render path assumes all names exist.
func Load(cfg config.SceneConfig) (*Registry, error) {
	overrides := map[string]string{
		"bottom": cfg.BottomPath,
		"stairs": cfg.StairsPath,
		"top":    cfg.TopPath,
	}

	r := &Registry{meshes: make(map[string]*wavefront.Mesh, len(overrides))}

	for _, name := range assets.Names() {
		data, err := assets.Load(name, overrides[name])
		if err != nil {
			return nil, fmt.Errorf("loading scene object %q: %w", name, err)
		}

		mesh, err := wavefront.ParseBytes(data)
		if err != nil {
			return nil, fmt.Errorf("importing scene object %q: %w", name, err)
		}

		for _, s := range mesh.Skipped {
			logger.Warn("skipped geometry line",
				zap.String("object", name),
				zap.Int("line", s.Line),
				zap.String("text", s.Text),
				zap.Error(s.Err),
			)
		}

		logger.Info("scene object loaded",
			zap.String("name", name),
			zap.String("mesh", mesh.Name),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("normals", len(mesh.Normals)),
			zap.Int("faces", len(mesh.Faces)),
		)

		r.meshes[name] = mesh
	}

	return r, nil
}

// Get returns the mesh registered under name.
func (r *Registry) Get(name string) (*wavefront.Mesh, error) {
	mesh, ok := r.meshes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene object %q", name)
	}
	return mesh, nil
}

// MustGet returns the mesh registered under name. An unknown name is a
// configuration bug and is fatal.
func (r *Registry) MustGet(name string) *wavefront.Mesh {
	mesh, err := r.Get(name)
	if err != nil {
		logger.Fatal("scene registry", zap.Error(err))
	}
	return mesh
}

// Names returns the registered scene-object names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		names = append(names, name)
	}
	return names
}
