// Package browser implements the file listing and navigation engine: it
// scans directories, classifies and orders their entries, resolves typed
// paths, and drives the browse/prompt state machine consumed by the host.
package browser

import "strings"

// Kind tags an entry. The declaration order doubles as the sort rank:
// the parent entry first, then directories, regular files, stdin-provided
// entries, and finally entries whose contents could not be read.
type Kind int

const (
	KindUp Kind = iota
	KindDirectory
	KindFile
	KindUnknown
	KindInaccessible
)

func (k Kind) String() string {
	switch k {
	case KindUp:
		return "up"
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindUnknown:
		return "unknown"
	case KindInaccessible:
		return "inaccessible"
	default:
		return "invalid"
	}
}

// Entry is one filesystem child shown in a listing.
type Entry struct {
	// Name is the display name: the base name for depth-1 entries, the
	// path relative to the scanned directory for deeper ones.
	Name string
	// Path is absolute. It existed when the listing was built; external
	// mutation is not reflected until the next scan.
	Path string
	Kind Kind
	// Depth below the scanned directory. The parent entry has depth 0,
	// direct children have depth 1.
	Depth int
}

// Listing is the ordered, filtered set of entries for one directory at one
// point in time, together with the hidden flag that produced it.
type Listing struct {
	Entries    []Entry
	ShowHidden bool
}

// Len returns the number of entries.
func (l Listing) Len() int {
	return len(l.Entries)
}

// displayName converts a raw filesystem name for display. Names that are
// not valid UTF-8 are kept, with undecodable bytes replaced.
func displayName(raw string) string {
	return strings.ToValidUTF8(raw, "�")
}
