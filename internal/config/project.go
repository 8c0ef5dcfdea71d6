package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Project is the content of eolinuxify.json
type Project struct {
	Exclude []string `json:"exclude"`
}

// ProjectPath returns the project config path for root, honoring an explicit override
func (c *Config) ProjectPath(root string) string {
	if c.ProjectFile != "" {
		if filepath.IsAbs(c.ProjectFile) {
			return c.ProjectFile
		}
		return filepath.Join(root, c.ProjectFile)
	}
	return filepath.Join(root, ProjectFileName)
}

// LoadProject reads the project config at path. A missing file yields an
// empty configuration; a malformed one is an error.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Project{}, nil
		}
		return nil, fmt.Errorf("config: failed to read '%s': %w", path, err)
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("config: failed to parse '%s': %w", path, err)
	}
	return &project, nil
}

// Excludes returns the project excludes followed by extra ones
func (p *Project) Excludes(extra ...string) []string {
	if p == nil {
		return append([]string(nil), extra...)
	}
	excludes := make([]string, 0, len(p.Exclude)+len(extra))
	excludes = append(excludes, p.Exclude...)
	return append(excludes, extra...)
}
