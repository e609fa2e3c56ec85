package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucarv/mezzanine/internal/config"
	"github.com/lucarv/mezzanine/internal/logger"
)

func TestMain(m *testing.M) {
	// Registry loading logs; keep test output clean.
	logger.InitWithOutputs("error", logger.FileOutput{}, false)
	os.Exit(m.Run())
}

func TestLoad_BuiltinMeshes(t *testing.T) {
	reg, err := Load(config.SceneConfig{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, name := range []string{"bottom", "stairs", "top"} {
		mesh, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if len(mesh.Vertices) == 0 || len(mesh.Normals) == 0 || len(mesh.Faces) == 0 {
			t.Errorf("mesh %q is empty: %d vertices, %d normals, %d faces",
				name, len(mesh.Vertices), len(mesh.Normals), len(mesh.Faces))
		}
		if len(mesh.Skipped) != 0 {
			t.Errorf("built-in mesh %q has %d skipped lines", name, len(mesh.Skipped))
		}
	}
}

func TestGet_UnknownName(t *testing.T) {
	reg, err := Load(config.SceneConfig{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := reg.Get("roof"); err == nil {
		t.Error("expected error for unknown scene object")
	}
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.obj")
	src := "o flat\nv 0 0 0\nv 1 0 0\nv 1 0 1\nv 0 0 1\nvn 0 1 0\nf 1//1 2//1 3//1 4//1\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("failed to write override mesh: %v", err)
	}

	reg, err := Load(config.SceneConfig{TopPath: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	top, err := reg.Get("top")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if top.Name != "flat" {
		t.Errorf("expected override mesh, got %q", top.Name)
	}
	if len(top.Faces) != 1 {
		t.Errorf("expected 1 face from override, got %d", len(top.Faces))
	}
}

func TestLoad_MissingOverrideIsFatal(t *testing.T) {
	_, err := Load(config.SceneConfig{
		BottomPath: filepath.Join(t.TempDir(), "missing.obj"),
	})
	if err == nil {
		t.Error("expected load failure for unreadable mesh source")
	}
}

func TestLoad_InvalidOverrideIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	// Face references a vertex that does not exist.
	src := "o bad\nv 0 0 0\nvn 0 1 0\nf 1//1 2//1 3//1 4//1\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("failed to write override mesh: %v", err)
	}

	if _, err := Load(config.SceneConfig{StairsPath: path}); err == nil {
		t.Error("expected load failure for out-of-range face index")
	}
}

func TestRegistry_Names(t *testing.T) {
	reg, err := Load(config.SceneConfig{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := reg.Names()
	if len(names) != 3 {
		t.Errorf("expected 3 scene objects, got %d: %v", len(names), names)
	}
}
