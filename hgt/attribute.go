package hgt

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hgtparse/annotation"
	"github.com/grailbio/hgtparse/interval"
)

// GeneSource supplies the annotated genes that coordinates are attributed
// to.  It returns the features of featureType that carry the qualifier,
// named by the qualifier's value, first occurrence per name, in file order.
// annotation.Features implements it.
type GeneSource interface {
	Genes(featureType, qualifier string) []annotation.Gene
}

// Genes are coding sequences named by their protein accession.
const (
	codingFeature    = "CDS"
	geneIDQualifier  = "protein_id"
	genemarkAtypical = "2"
)

// attributeEgid returns the genes that lie entirely inside at least one of
// the genomic islands listed in r, sorted and newline-joined.  Each line of
// r starts with the island's start and end; lines with fewer than two
// tokens are skipped.
func attributeEgid(genes []annotation.Gene, r io.Reader) (string, error) {
	spans := make([]interval.NamedSpan, len(genes))
	for i, g := range genes {
		spans[i] = interval.NamedSpan{Name: g.ID, Span: interval.Span{Start: g.Start, End: g.End}}
	}
	idx, err := interval.NewContainmentIndex(spans)
	if err != nil {
		return "", err
	}
	var (
		scanner = newLineScanner(r)
		found   = newIDSet()
		tokens  [2]string
		islands int
	)
	for lineIdx := 1; scanner.Scan(); lineIdx++ {
		if interval.Fields(tokens[:], scanner.Text()) < 2 {
			continue
		}
		island, err := parseSpan(tokens[0], tokens[1])
		if err != nil {
			return "", errors.E(errors.Invalid, fmt.Sprintf("egid line %d", lineIdx), err)
		}
		islands++
		idx.Within(island, found.Add)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	log.Debug.Printf("egid: %d gene(s) in %d island(s), out of %d gene(s)", found.Len(), islands, idx.Len())
	return strings.Join(found.Sorted(), "\n"), nil
}

// genemarkKey is the exact location of a gene call.
type genemarkKey struct {
	start, end int
	strand     string
}

// attributeGenemark returns the genes whose start, end and strand equal
// those of an atypical (class 2) gene call in a GeneMark list, sorted and
// newline-joined.  Only rows after the "# Length" header line are read.  A
// gene matched by several calls is listed once per call.
func attributeGenemark(genes []annotation.Gene, r io.Reader) (string, error) {
	byKey := map[genemarkKey][]string{}
	for _, g := range genes {
		k := genemarkKey{g.Start, g.End, g.Strand}
		byKey[k] = append(byKey[k], g.ID)
	}
	var (
		scanner = newLineScanner(r)
		matched []string
		tokens  [6]string
		reading bool
		calls   int
	)
	for lineIdx := 1; scanner.Scan(); lineIdx++ {
		line := scanner.Text()
		n := interval.CountFields(line)
		if n != 2 && n != 6 {
			continue
		}
		interval.Fields(tokens[:n], line)
		if n == 2 {
			if tokens[0] == "#" && tokens[1] == "Length" {
				reading = true
			}
			continue
		}
		if !reading || tokens[5] != genemarkAtypical {
			continue
		}
		call, err := parseSpan(strings.Trim(tokens[2], "<>"), strings.Trim(tokens[3], "<>"))
		if err != nil {
			return "", errors.E(errors.Invalid, fmt.Sprintf("genemark line %d", lineIdx), err)
		}
		calls++
		matched = append(matched, byKey[genemarkKey{call.Start, call.End, tokens[1]}]...)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	sort.Strings(matched)
	log.Debug.Printf("genemark: %d match(es) for %d atypical call(s), out of %d gene(s)", len(matched), calls, len(genes))
	return strings.Join(matched, "\n"), nil
}

func parseSpan(start, end string) (s interval.Span, err error) {
	if s.Start, err = strconv.Atoi(start); err != nil {
		return
	}
	s.End, err = strconv.Atoi(end)
	return
}
