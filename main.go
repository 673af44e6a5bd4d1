package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/bcq028/games101-ray-tracing/pkg/loaders"
	"github.com/bcq028/games101-ray-tracing/pkg/material"
	"github.com/bcq028/games101-ray-tracing/pkg/ppm"
	"github.com/bcq028/games101-ray-tracing/pkg/renderer"
	"github.com/bcq028/games101-ray-tracing/pkg/scene"
)

// createScene builds one of the built-in scenes by name. floor optionally
// overrides the floor texture of scenes that have one.
func createScene(sceneType string, floor material.Texture) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(floor), nil
	case "mirror":
		return scene.NewMirrorScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mirror'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	output := flag.String("output", "out.ppm", "Output file path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	texture := flag.String("texture", "", "Image file used as the floor texture (default scene only)")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted-style ray tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - glass and diffuse spheres over a checkerboard floor")
		fmt.Println("  mirror  - a single fully reflective sphere")
		return
	}

	var floor material.Texture
	if *texture != "" {
		tex, err := loaders.LoadTexture(*texture)
		if err != nil {
			log.Fatalf("Error loading texture: %v", err)
		}
		floor = tex
	}

	sc, err := createScene(*sceneType, floor)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if *width > 0 {
		sc.Width = *width
	}
	if *height > 0 {
		sc.Height = *height
	}

	r := renderer.NewRenderer(sc)
	if !*quiet {
		r.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}

	fmt.Printf("Rendering %s scene at %dx%d...\n", *sceneType, sc.Width, sc.Height)
	startTime := time.Now()
	framebuffer := r.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	switch *format {
	case "ppm":
		if err := ppm.WriteFile(*output, sc.Width, sc.Height, framebuffer); err != nil {
			log.Fatalf("Error saving PPM: %v", err)
		}
	case "png":
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Error creating file: %v", err)
		}
		defer file.Close()
		if err := png.Encode(file, renderer.ToImage(framebuffer, sc.Width, sc.Height)); err != nil {
			log.Fatalf("Error saving PNG: %v", err)
		}
	default:
		log.Fatalf("Unknown output format %q", *format)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
