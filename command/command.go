// Package command maps symbolic VisualSFM menu paths to the integer
// command codes its socket listener understands.
//
// Paths mirror the GUI menu structure, e.g. ["file", "open_multi_images"]
// or ["sfm", "pairwise", "compute_missing_match"]. The mapping is built
// once and never mutated.
package command

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownCommandError reports a path segment with no entry in the tree.
type UnknownCommandError struct {
	Path    []string
	Segment string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q: no entry for segment %q",
		strings.Join(e.Path, "/"), e.Segment)
}

// node is either a leaf holding a command code or a submenu holding
// children, never both.
type node struct {
	code     int
	children map[string]node
}

func leaf(code int) node { return node{code: code} }

func menu(children map[string]node) node { return node{children: children} }

// Registry is an immutable tree of menu segments terminating in command
// codes.
type Registry struct {
	root map[string]node
}

// Resolve descends the tree segment by segment and returns the code at
// the leaf. Any absent segment, or a path stopping at a submenu, fails
// with *UnknownCommandError. There is no partial matching and no case
// folding.
func (r *Registry) Resolve(path ...string) (int, error) {
	if len(path) == 0 {
		return 0, &UnknownCommandError{Path: path, Segment: ""}
	}

	current := r.root
	var n node
	for i, seg := range path {
		var ok bool
		n, ok = current[seg]
		if !ok {
			return 0, &UnknownCommandError{Path: path, Segment: seg}
		}
		if i < len(path)-1 {
			if n.children == nil {
				// Leaf reached with segments left over.
				return 0, &UnknownCommandError{Path: path, Segment: path[i+1]}
			}
			current = n.children
		}
	}

	if n.children != nil {
		// Path names a submenu, not a command.
		return 0, &UnknownCommandError{Path: path, Segment: path[len(path)-1]}
	}
	return n.code, nil
}

// Entry is one resolvable command path and its code.
type Entry struct {
	Path []string
	Code int
}

// Paths returns every resolvable command, sorted by path.
func (r *Registry) Paths() []Entry {
	var entries []Entry
	var walk func(prefix []string, nodes map[string]node)
	walk = func(prefix []string, nodes map[string]node) {
		for seg, n := range nodes {
			path := append(append([]string{}, prefix...), seg)
			if n.children != nil {
				walk(path, n.children)
				continue
			}
			entries = append(entries, Entry{Path: path, Code: n.code})
		}
	}
	walk(nil, r.root)

	sort.Slice(entries, func(i, j int) bool {
		return strings.Join(entries[i].Path, "/") < strings.Join(entries[j].Path, "/")
	})
	return entries
}

// Resolve looks up path in the default VisualSFM registry.
func Resolve(path ...string) (int, error) {
	return Default.Resolve(path...)
}
