package browser

import (
	"sort"
	"strings"
)

// Entry ordering is a total order. The parent entry ranks first, then kind
// rank (directories before files), then names. Names compare bytewise
// (ordinal): collation is deliberately not locale-aware so listings are
// deterministic across environments. With the depth variant enabled,
// shallower entries rank before deeper ones ahead of everything else.

// Ordering selects the comparator variants applied to a listing.
type Ordering struct {
	// ByType ranks directories before regular files. On by default.
	ByType bool
	// ByDepth ranks shallower entries first; only meaningful for
	// recursive scans.
	ByDepth bool
}

// DefaultOrdering is the core ordering: by type, then by name.
func DefaultOrdering() Ordering {
	return Ordering{ByType: true}
}

// Compare returns a negative, zero, or positive value ordering a before,
// equal to, or after b.
func (o Ordering) Compare(a, b *Entry) int {
	if o.ByDepth && a.Depth != b.Depth {
		return a.Depth - b.Depth
	}
	if o.ByType && a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	return strings.Compare(a.Name, b.Name)
}

// sortEntries orders entries in place. The parent entry, when present, is
// pinned to the front and everything after it is sorted; this keeps it
// first even under orderings that would not rank it there.
func sortEntries(entries []Entry, o Ordering) {
	rest := entries
	if len(entries) > 0 && entries[0].Kind == KindUp {
		rest = entries[1:]
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return o.Compare(&rest[i], &rest[j]) < 0
	})
}
