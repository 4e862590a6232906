package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/wiregrid/internal/fsutil"
)

// loadWireframe reads the wireframe source. A directory is treated as a
// multi-scene document: every .wire file inside it, in name order, joined
// by scene separators.
func loadWireframe(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read wireframe path: %w", err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read wireframe file: %w", err)
		}
		return string(data), nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".wire")
	if err != nil {
		return "", fmt.Errorf("failed to find wireframe files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no .wire files found in %s", path)
	}

	parts := make([]string, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read wireframe file %s: %w", file, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n---\n"), nil
}

// loadInteractions reads the optional interaction DSL file. An empty path
// yields empty source.
func loadInteractions(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read interactions file: %w", err)
	}
	return string(data), nil
}
