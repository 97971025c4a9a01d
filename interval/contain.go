package interval

import (
	itree "github.com/biogo/store/interval"
)

// entry is one named span stored in a ContainmentIndex.  It satisfies
// itree.IntInterface; tree ranges are half-open, so a closed span
// [Start, End] is stored as [Start, End+1).
type entry struct {
	uid  uintptr
	name string
	span Span
}

func (e entry) ID() uintptr { return e.uid }
func (e entry) Range() itree.IntRange {
	return itree.IntRange{Start: e.span.Start, End: e.span.End + 1}
}

// Overlap is required by itree.IntInterface.
func (e entry) Overlap(b itree.IntRange) bool {
	return b.Start < e.span.End+1 && e.span.Start < b.End
}

// query prunes the tree by plain overlap.  Containment is checked on the
// candidates afterwards, since a subtree whose union range is not
// contained may still hold contained entries.
type query struct {
	span Span
}

func (q query) Overlap(b itree.IntRange) bool {
	return b.Start < q.span.End+1 && q.span.Start < b.End
}

// ContainmentIndex answers which of a fixed set of named spans lie entirely
// inside a query span.  The index is read-only once built.
type ContainmentIndex struct {
	tree itree.IntTree
	// inverted holds spans with End < Start.  They cannot be stored in the
	// tree, so they are checked one by one.
	inverted []entry
	n        int
}

// NamedSpan is an input element to NewContainmentIndex.
type NamedSpan struct {
	Name string
	Span Span
}

// NewContainmentIndex builds an index over spans.
func NewContainmentIndex(spans []NamedSpan) (*ContainmentIndex, error) {
	idx := &ContainmentIndex{n: len(spans)}
	for i, s := range spans {
		e := entry{uid: uintptr(i), name: s.Name, span: s.Span}
		if s.Span.Inverted() {
			idx.inverted = append(idx.inverted, e)
			continue
		}
		if err := idx.tree.Insert(e, true); err != nil {
			return nil, err
		}
	}
	idx.tree.AdjustRanges()
	return idx, nil
}

// Len returns the number of spans in the index.
func (idx *ContainmentIndex) Len() int { return idx.n }

// Within calls fn with the name of every indexed span that r fully contains.
// The same name may be reported more than once if it was inserted more than
// once.
func (idx *ContainmentIndex) Within(r Span, fn func(name string)) {
	if !r.Inverted() && idx.tree.Len() > 0 {
		idx.tree.DoMatching(func(e itree.IntInterface) (done bool) {
			if c := e.(entry); r.Contains(c.span) {
				fn(c.name)
			}
			return false
		}, query{r})
	}
	for _, e := range idx.inverted {
		if r.Contains(e.span) {
			fn(e.name)
		}
	}
}
