// Package ppm serializes linear framebuffers as binary PPM (P6) images.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bcq028/games101-ray-tracing/pkg/core"
)

// Write serializes a row-major framebuffer as a binary PPM image: a "P6"
// header with the dimensions and maximum channel value, then one RGB byte
// triple per pixel. Rows are written in buffer order, so row 0 of the
// framebuffer becomes the top scanline of the image. Channel values are
// clamped to [0,1] before scaling to the 8-bit range.
func Write(w io.Writer, width, height int, framebuffer []core.Vec3) error {
	if len(framebuffer) != width*height {
		return fmt.Errorf("framebuffer has %d pixels, want %d for %dx%d image",
			len(framebuffer), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	var rgb [3]byte
	for _, pixel := range framebuffer {
		c := pixel.Clamp(0, 1)
		rgb[0] = uint8(255 * c.X)
		rgb[1] = uint8(255 * c.Y)
		rgb[2] = uint8(255 * c.Z)
		if _, err := bw.Write(rgb[:]); err != nil {
			return fmt.Errorf("failed to write pixel data: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the framebuffer to a file at the given path
func WriteFile(path string, width, height int, framebuffer []core.Vec3) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Write(file, width, height, framebuffer); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
