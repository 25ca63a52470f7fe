package browser_test

import (
	"testing"

	"github.com/Yaroslav-95/rofi-file-browser-extended/internal/browser"

	"github.com/stretchr/testify/assert"
)

func kindRank(k browser.Kind) int { return int(k) }

// assertOrdered checks the listing's total order: kind ranks never
// decrease, and names are ordinally non-decreasing within a rank.
func assertOrdered(t *testing.T, entries []browser.Entry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		assert.LessOrEqual(t, kindRank(prev.Kind), kindRank(cur.Kind),
			"%q (%s) ranked after %q (%s)", prev.Name, prev.Kind, cur.Name, cur.Kind)
		if prev.Kind == cur.Kind {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		}
	}
}

func TestKindRanks(t *testing.T) {
	assert.Less(t, kindRank(browser.KindUp), kindRank(browser.KindDirectory))
	assert.Less(t, kindRank(browser.KindDirectory), kindRank(browser.KindFile))
	assert.Less(t, kindRank(browser.KindFile), kindRank(browser.KindInaccessible))
}

func TestCompareByType(t *testing.T) {
	o := browser.DefaultOrdering()

	dir := &browser.Entry{Name: "zzz", Kind: browser.KindDirectory}
	file := &browser.Entry{Name: "aaa", Kind: browser.KindFile}
	assert.Negative(t, o.Compare(dir, file), "directories rank before files regardless of name")

	a := &browser.Entry{Name: "a.txt", Kind: browser.KindFile}
	b := &browser.Entry{Name: "b.txt", Kind: browser.KindFile}
	assert.Negative(t, o.Compare(a, b))
	assert.Positive(t, o.Compare(b, a))
	assert.Zero(t, o.Compare(a, a))
}

func TestCompareOrdinal(t *testing.T) {
	o := browser.DefaultOrdering()

	// Bytewise comparison: "." sorts before letters, uppercase before
	// lowercase.
	hidden := &browser.Entry{Name: ".b", Kind: browser.KindFile}
	plain := &browser.Entry{Name: "a.txt", Kind: browser.KindFile}
	assert.Negative(t, o.Compare(hidden, plain))

	upper := &browser.Entry{Name: "Zebra", Kind: browser.KindFile}
	lower := &browser.Entry{Name: "apple", Kind: browser.KindFile}
	assert.Negative(t, o.Compare(upper, lower))
}

func TestCompareByDepth(t *testing.T) {
	o := browser.Ordering{ByType: true, ByDepth: true}

	shallowFile := &browser.Entry{Name: "z", Kind: browser.KindFile, Depth: 1}
	deepDir := &browser.Entry{Name: "a/b", Kind: browser.KindDirectory, Depth: 2}
	assert.Negative(t, o.Compare(shallowFile, deepDir), "depth outranks type")

	sameDepthDir := &browser.Entry{Name: "a", Kind: browser.KindDirectory, Depth: 1}
	assert.Positive(t, o.Compare(shallowFile, sameDepthDir), "type breaks depth ties")
}

func TestCompareNameOnly(t *testing.T) {
	o := browser.Ordering{}

	dir := &browser.Entry{Name: "zzz", Kind: browser.KindDirectory}
	file := &browser.Entry{Name: "aaa", Kind: browser.KindFile}
	assert.Positive(t, o.Compare(dir, file), "without type ordering names alone decide")
}
