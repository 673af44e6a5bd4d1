package ppm

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
	"github.com/bcq028/games101-ray-tracing/pkg/renderer"
	"github.com/bcq028/games101-ray-tracing/pkg/scene"
)

func TestWrite_HeaderAndPixelBytes(t *testing.T) {
	framebuffer := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0.5, 2, -1), // Out-of-range channels clamp to [0,1]
	}

	var buf bytes.Buffer
	if err := Write(&buf, 2, 1, framebuffer); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 127, 255, 0)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("Expected %v, got %v", expected, buf.Bytes())
	}
}

func TestWrite_SizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 2, 2, make([]core.Vec3, 3))
	if err == nil {
		t.Error("Expected error for mismatched framebuffer size")
	}
}

func TestWrite_EmptySceneRender(t *testing.T) {
	// An empty 2x2 scene must serialize to the header plus exactly 2*2*3
	// color bytes, all of them the background color
	sc := scene.NewScene(2, 2)
	framebuffer := renderer.NewRenderer(sc).Render()

	var buf bytes.Buffer
	if err := Write(&buf, sc.Width, sc.Height, framebuffer); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	header := []byte("P6\n2 2\n255\n")
	if !bytes.HasPrefix(buf.Bytes(), header) {
		t.Fatalf("Expected header %q, got %q", header, buf.Bytes()[:len(header)])
	}

	pixels := buf.Bytes()[len(header):]
	if len(pixels) != 2*2*3 {
		t.Fatalf("Expected 12 color bytes after the header, got %d", len(pixels))
	}
	first := pixels[:3]
	for i := 0; i < len(pixels); i += 3 {
		if !bytes.Equal(pixels[i:i+3], first) {
			t.Errorf("Pixel %d differs from the background: %v vs %v", i/3, pixels[i:i+3], first)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	framebuffer := []core.Vec3{core.NewVec3(0, 0, 0)}

	if err := WriteFile(path, 1, 1, framebuffer); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	expected := append([]byte("P6\n1 1\n255\n"), 0, 0, 0)
	if !bytes.Equal(data, expected) {
		t.Errorf("Expected %v, got %v", expected, data)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.ppm")
	err := WriteFile(path, 1, 1, []core.Vec3{{}})
	if err == nil {
		t.Error("Expected error for unwritable path")
	}
}
