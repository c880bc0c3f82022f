// Package session tracks the set of videos added during one run of the
// application and their current in/out selections. State lives in memory
// only and is discarded when the process ends.
package session

import (
	"path/filepath"
	"strings"
)

// Entry is one tracked video with its in/out selection in whole seconds.
type Entry struct {
	Path string
	In   int
	Out  int
}

// Session holds tracked entries keyed by path, in insertion order.
type Session struct {
	order   []string
	entries map[string]*Entry
}

// New creates an empty session.
func New() *Session {
	return &Session{
		entries: make(map[string]*Entry),
	}
}

// Add tracks a new video with zero in/out times. Adding a path that is
// already tracked is a silent no-op; it returns false in that case.
func (s *Session) Add(path string) bool {
	if _, ok := s.entries[path]; ok {
		return false
	}
	e := &Entry{Path: path}
	s.entries[path] = e
	s.order = append(s.order, path)
	return true
}

// SetIn overwrites the in time for the entry at path. Negative values are
// clamped to 0. Unknown paths are ignored.
func (s *Session) SetIn(path string, seconds int) {
	if e, ok := s.entries[path]; ok {
		e.In = clamp(seconds)
	}
}

// SetOut overwrites the out time for the entry at path. Negative values are
// clamped to 0. Unknown paths are ignored.
func (s *Session) SetOut(path string, seconds int) {
	if e, ok := s.entries[path]; ok {
		e.Out = clamp(seconds)
	}
}

// Entry returns a copy of the entry for path.
func (s *Session) Entry(path string) (Entry, bool) {
	e, ok := s.entries[path]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns copies of all tracked entries in insertion order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, path := range s.order {
		out = append(out, *s.entries[path])
	}
	return out
}

// Len returns the number of tracked entries.
func (s *Session) Len() int {
	return len(s.order)
}

func clamp(seconds int) int {
	if seconds < 0 {
		return 0
	}
	return seconds
}

// allowedExtensions are the video file types the app accepts.
var allowedExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mkv": true,
}

// IsVideoFile reports whether path has one of the accepted video extensions.
func IsVideoFile(path string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(path))]
}
