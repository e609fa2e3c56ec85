// Package assets provides the scene geometry sources. The three
// mezzanine meshes are compiled into the binary; a config path can
// override any of them with a file on disk.
package assets

import (
	"embed"
	"fmt"
	"os"
)

//go:embed meshes/*.obj
var meshes embed.FS

// builtin maps scene-object names to embedded mesh files.
var builtin = map[string]string{
	"bottom": "meshes/mezzanine_bottom.obj",
	"stairs": "meshes/mezzanine_stairs.obj",
	"top":    "meshes/mezzanine_top.obj",
}

// Load returns the geometry source for the named scene object. A
// non-empty path reads from disk instead of the embedded default.
func Load(name, path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading mesh override for %q: %w", name, err)
		}
		return data, nil
	}

	file, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("no built-in mesh named %q", name)
	}

	data, err := meshes.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading built-in mesh %q: %w", name, err)
	}
	return data, nil
}

// Names returns the scene-object names with built-in geometry.
func Names() []string {
	return []string{"bottom", "stairs", "top"}
}
