package ignore

import "path/filepath"

// Chain is the ordered set of Rules from the walk root down to the current
// directory. A path is ignored when any level matches it, so an exclusion in
// an ancestor cannot be undone by a descendant's rules.
//
// Chains are immutable: Push returns a new Chain and leaves the receiver
// usable by sibling directories.
type Chain struct {
	levels []*Rules
}

// NewChain returns an empty chain
func NewChain() *Chain {
	return &Chain{}
}

// Push returns c extended with the rules of a deeper directory.
// Nil rules (no ignore file) add no level.
func (c *Chain) Push(rules *Rules) *Chain {
	if rules == nil {
		return c
	}
	levels := make([]*Rules, len(c.levels), len(c.levels)+1)
	copy(levels, c.levels)
	return &Chain{levels: append(levels, rules)}
}

// Depth returns the number of levels that carry rules
func (c *Chain) Depth() int {
	return len(c.levels)
}

// Ignored reports whether path is excluded. Each level is queried with the
// path relative to its own directory; the first match wins.
func (c *Chain) Ignored(path string, isDir bool) bool {
	if IsVCSDir(filepath.Base(path)) {
		return true
	}
	for _, level := range c.levels {
		if level.Match(path, isDir) {
			return true
		}
	}
	return false
}

// Predicate exposes Ignored as a Predicate
func (c *Chain) Predicate() Predicate {
	return c.Ignored
}
