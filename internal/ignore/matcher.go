package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// Compile builds the rules declared in dir from already repaired text.
// dir should be absolute; Match expects absolute paths below it.
func Compile(dir, repaired string, opts ...Option) *Rules {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return compile(dir, repaired, options)
}

func compile(dir, repaired string, options options) *Rules {
	r := &Rules{
		dir:    filepath.Clean(dir),
		source: options.source,
		logger: options.logger,
	}

	where := r.source
	if where == "" {
		where = r.dir
	}

	// Malformed patterns are reported and skipped; the rest still apply.
	r.matcher = gitignore.New(strings.NewReader(repaired), r.dir, func(e gitignore.Error) bool {
		r.logger.Warn("ignore: %s: skipping pattern: %v", where, e)
		return true
	})
	if r.matcher == nil {
		r.matcher = gitignore.New(strings.NewReader(""), r.dir, nil)
	}
	return r
}

// Match reports whether path is ignored by these rules alone.
// Paths outside the declaring directory, and the directory itself, never match.
func (r *Rules) Match(path string, isDir bool) bool {
	if r == nil || r.matcher == nil {
		return false
	}

	rel, ok := relativeTo(r.dir, path)
	if !ok {
		return false
	}

	match := r.matcher.Relative(filepath.ToSlash(rel), isDir)
	if match == nil {
		return false
	}
	r.logger.Debug("ignore.Match: %q matched rule %v (ignore: %v)", rel, match, match.Ignore())
	return match.Ignore()
}

// Predicate exposes Match as a Predicate
func (r *Rules) Predicate() Predicate {
	return r.Match
}

// relativeTo returns path relative to dir when path lies strictly below dir.
func relativeTo(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, filepath.Clean(path))
	if err != nil || rel == "." {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
