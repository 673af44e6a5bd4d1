package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"mirror scene", "mirror", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType, nil)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc == nil {
				t.Fatal("Expected a scene, got nil")
			}
			if sc.Width <= 0 || sc.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d", sc.Width, sc.Height)
			}
			if sc.MaxDepth <= 0 {
				t.Errorf("Scene max depth should be positive, got %d", sc.MaxDepth)
			}
		})
	}
}
