package ignore

import (
	"github.com/bethropolis/eolinuxify/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Predicate reports whether an absolute path is ignored
type Predicate func(path string, isDir bool) bool

// Rules is the compiled ignore file of a single directory.
// Patterns are matched against paths relative to that directory.
type Rules struct {
	dir     string
	source  string
	matcher gitignore.GitIgnore
	logger  utils.Logger
}

// Dir returns the directory that declared the rules
func (r *Rules) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Source returns the ignore file path, or "" for rules compiled from text
func (r *Rules) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}
