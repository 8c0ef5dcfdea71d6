// Package walker handles project discovery
package walker

import (
	"sort"
	"sync"
)

// SkippedReason clarifies why a file/directory was not collected.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore File Rule)"
	ReasonIgnoredVCS        SkippedReason = "Ignored (Version Control Metadata)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped items in the order they were seen
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	items := make([]SkippedItem, len(st.items))
	copy(items, st.items)
	return items
}

// Len returns the number of tracked items
func (st *SkippedTracker) Len() int {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return len(st.items)
}

// SortSkipped orders items by path
func SortSkipped(items []SkippedItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
}
