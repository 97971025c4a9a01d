package interval

import "fmt"

// Span is a 1-based genomic range. Both ends are closed.
type Span struct {
	Start, End int
}

// Contains reports whether o lies entirely inside s.
//
//   s:      |----------|
//   o:        |-----|        true
//   o:      |----------|     true
//   o:   |-----|             false
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Inverted is true if End precedes Start.
func (s Span) Inverted() bool {
	return s.End < s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
