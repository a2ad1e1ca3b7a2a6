package hierarchy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func coll(id, name, parent string) Entry {
	return Entry{ID: id, Type: CollectionType, VisibleName: name, Parent: parent}
}

func TestBuild_ResolvesPathsRootToLeaf(t *testing.T) {
	entries := []Entry{
		coll("a", "Puzzles", ""),
		coll("b", "Crosswords", "a"),
		coll("c", "2026", "b"),
		coll("d", "Books", ""),
		{ID: "x", Type: DocumentType, VisibleName: "ignored.pdf", Parent: "a"},
	}

	dirs, err := Build(entries)
	require.NoError(t, err)

	got := map[string]string{}
	for _, d := range dirs {
		got[d.ID] = d.Path
	}

	require.Equal(t, map[string]string{
		"a": "/Puzzles/",
		"b": "/Puzzles/Crosswords/",
		"c": "/Puzzles/Crosswords/2026/",
		"d": "/Books/",
	}, got)
}

func TestBuild_PathInvariants(t *testing.T) {
	entries := []Entry{
		coll("r", "root-level", ""),
		coll("m", "mid", "r"),
		coll("l", "leaf", "m"),
	}

	dirs, err := Build(entries)
	require.NoError(t, err)

	for _, d := range dirs {
		require.True(t, strings.HasPrefix(d.Path, "/"), "path %q must start with /", d.Path)
		require.True(t, strings.HasSuffix(d.Path, "/"), "path %q must end with /", d.Path)
	}
}

func TestBuild_IgnoresDocuments(t *testing.T) {
	entries := []Entry{
		{ID: "doc", Type: DocumentType, VisibleName: "a.pdf", Parent: ""},
	}
	dirs, err := Build(entries)
	require.NoError(t, err)
	require.Empty(t, dirs)
}

func TestBuild_MissingParentFails(t *testing.T) {
	entries := []Entry{
		coll("b", "Orphan", "nope"),
	}
	_, err := Build(entries)

	var herr *Error
	require.True(t, errors.As(err, &herr))
	require.Equal(t, "b", herr.EntryID)
}

func TestBuild_CyclicParentChainFails(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name:    "self reference",
			entries: []Entry{coll("a", "Self", "a")},
		},
		{
			name: "two node cycle",
			entries: []Entry{
				coll("a", "A", "b"),
				coll("b", "B", "a"),
			},
		},
		{
			name: "cycle behind a valid prefix",
			entries: []Entry{
				coll("a", "A", "b"),
				coll("b", "B", "c"),
				coll("c", "C", "a"),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.entries)
			var herr *Error
			require.True(t, errors.As(err, &herr), "expected hierarchy error, got %v", err)
			require.Contains(t, herr.Error(), "cyclic")
		})
	}
}

func TestSorted_InjectsRootAndOrdersByPath(t *testing.T) {
	dirs := []Directory{
		{ID: "b", Path: "/Zebra/"},
		{ID: "a", Path: "/Apple/"},
		{ID: "c", Path: "/Apple/Pie/"},
	}

	got := Sorted(dirs)

	require.Equal(t, []Directory{
		Root,
		{ID: "a", Path: "/Apple/"},
		{ID: "c", Path: "/Apple/Pie/"},
		{ID: "b", Path: "/Zebra/"},
	}, got)

	// input untouched
	require.Equal(t, "/Zebra/", dirs[0].Path)
}
