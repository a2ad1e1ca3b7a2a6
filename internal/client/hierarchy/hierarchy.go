// Package hierarchy reconstructs the remote folder tree from the flat
// document listing returned by the storage API. Remote entries reference
// their parent by ID; a collection's full path is recovered by walking the
// parent chain root-ward.
package hierarchy

import (
	"fmt"
	"sort"
)

// Remote entry types as reported by the storage service.
const (
	CollectionType = "CollectionType"
	DocumentType   = "DocumentType"
)

// Entry is a single node of the remote listing, document or collection.
// The parent link is empty for entries that live in the root.
type Entry struct {
	ID          string `json:"ID"`
	Version     int    `json:"Version"`
	Type        string `json:"Type"`
	VisibleName string `json:"VisibleName"`
	Parent      string `json:"Parent"`
	Bookmarked  bool   `json:"Bookmarked"`
}

// Directory is a materialized root-to-collection path. The implicit root has
// an empty ID and path "/"; every other path starts and ends with "/".
type Directory struct {
	ID   string `json:"id,omitempty"`
	Path string `json:"path"`
}

// Root is the implicit top-level directory present on every account.
var Root = Directory{ID: "", Path: "/"}

// Error reports a malformed parent chain: a parent ID that does not appear
// in the listing, or a cycle of parent links.
type Error struct {
	EntryID string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("broken folder hierarchy at entry %s: %s", e.EntryID, e.Reason)
}

// Build resolves the full path of every collection in entries.
//
// The parent walk uses a visited set instead of recursion, so a
// self-referential or circular parent chain fails with *Error instead of
// looping forever. A parent ID absent from the listing is an *Error as well.
// Result order is unspecified; see Sorted.
func Build(entries []Entry) ([]Directory, error) {
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if e.Type == CollectionType {
			byID[e.ID] = e
		}
	}

	dirs := make([]Directory, 0, len(byID))
	for _, e := range byID {
		path, err := resolvePath(e, byID)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, Directory{ID: e.ID, Path: path})
	}
	return dirs, nil
}

func resolvePath(e Entry, byID map[string]Entry) (string, error) {
	// Collect names leaf-to-root, then reverse into a path.
	names := []string{e.VisibleName}
	visited := map[string]struct{}{e.ID: {}}

	cur := e
	for cur.Parent != "" {
		parent, ok := byID[cur.Parent]
		if !ok {
			return "", &Error{EntryID: cur.ID, Reason: fmt.Sprintf("parent %s not in listing", cur.Parent)}
		}
		if _, seen := visited[parent.ID]; seen {
			return "", &Error{EntryID: parent.ID, Reason: "cyclic parent chain"}
		}
		visited[parent.ID] = struct{}{}
		names = append(names, parent.VisibleName)
		cur = parent
	}

	path := "/"
	for i := len(names) - 1; i >= 0; i-- {
		path += names[i] + "/"
	}
	return path, nil
}

// Sorted returns dirs ordered lexicographically by path, with the synthetic
// root entry injected first. The input slice is not modified.
func Sorted(dirs []Directory) []Directory {
	out := make([]Directory, 0, len(dirs)+1)
	out = append(out, Root)
	out = append(out, dirs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
