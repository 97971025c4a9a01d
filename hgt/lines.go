package hgt

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/grailbio/base/tsv"
)

// maxLineLen bounds the length of one report line.
const maxLineLen = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64<<10), maxLineLen)
	return s
}

// recordWriter accumulates tab-delimited records.  String returns them
// newline-joined without a trailing newline.
type recordWriter struct {
	buf bytes.Buffer
	w   *tsv.Writer
	n   int
}

func newRecordWriter() *recordWriter {
	rw := &recordWriter{}
	rw.w = tsv.NewWriter(&rw.buf)
	return rw
}

// Write appends one record made of fields[cols[0]], fields[cols[1]], ...
func (rw *recordWriter) Write(fields []string, cols []int) error {
	for _, c := range cols {
		rw.w.WriteString(fields[c])
	}
	rw.n++
	return rw.w.EndLine()
}

// Len returns the number of records written so far.
func (rw *recordWriter) Len() int { return rw.n }

func (rw *recordWriter) String() (string, error) {
	if err := rw.w.Flush(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(rw.buf.String(), "\n"), nil
}

// idSet is a set of identifiers that remembers first-insertion order.
type idSet struct {
	ids  []string
	seen map[string]struct{}
}

func newIDSet() *idSet {
	return &idSet{seen: map[string]struct{}{}}
}

func (s *idSet) Add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) Len() int { return len(s.ids) }

// Ordered returns the identifiers in first-insertion order.
func (s *idSet) Ordered() []string { return s.ids }

// Sorted returns the identifiers in lexicographic order.
func (s *idSet) Sorted() []string {
	ids := append([]string(nil), s.ids...)
	sort.Strings(ids)
	return ids
}
