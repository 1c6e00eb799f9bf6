package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneFileExt is the extension of text scene files
const SceneFileExt = ".txt"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	Name        string // Scene name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to scene file (file type only)
}

// BuiltinScenes lists the scenes compiled into the renderer
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "builtin:" + BuiltinDefault,
			Name:        "Default Scene",
			Description: "Spheres, an ellipsoid and a ground plane under two lights",
			Type:        "builtin",
		},
		{
			ID:          "builtin:" + BuiltinCones,
			Name:        "Cones",
			Description: "A cone and a smooth-shaded triangle",
			Type:        "builtin",
		},
	}
}

// ListSceneFiles scans dir for scene files and returns their metadata sorted by name
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*"+SceneFileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata extracts metadata from scene file header comments
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	// Fallback values from the filename
	info := SceneInfo{
		ID:       "file:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	// Read header comments
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if strings.HasPrefix(content, "Scene:") {
			info.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
		} else if strings.HasPrefix(content, "Description:") {
			info.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		}
	}

	return info, scanner.Err()
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
