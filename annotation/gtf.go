package annotation

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// gtfRecord stores data read from one line of a GTF file.
type gtfRecord struct {
	Chrom    string
	Source   string
	Molecule string
	Start    int
	Stop     int
	Score    string // unused floating point value, but may be "."
	Strand   string
	Frame    string
	Fields   string
}

// ReadGTF parses a GTF file.  Attribute values have their quotes removed.
func ReadGTF(r io.Reader) (Features, error) {
	scanner := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	scanner.Comment = '#'
	scanner.LazyQuotes = true
	var (
		features Features
		line     gtfRecord
	)
	for {
		if err := scanner.Read(&line); err != nil {
			if err != io.EOF {
				return nil, errors.E(errors.Invalid, "gtf", err)
			}
			break
		}
		f := Feature{
			Type:   line.Molecule,
			Start:  line.Start,
			End:    line.Stop,
			Strand: line.Strand,
		}
		if f.Strand != Forward && f.Strand != Reverse {
			f.Strand = Unknown
		}
		parseInfoFields(&f, line.Fields)
		features = append(features, f)
	}
	return features, nil
}

// parseInfoFields parses the attribute column of a GTF record, e.g.
//   gene_id "b0001"; protein_id "NP_414542.1";
func parseInfoFields(f *Feature, info string) {
	for _, field := range strings.Split(strings.TrimSpace(info), ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		pair := strings.SplitN(field, " ", 2)
		if len(pair) == 1 {
			f.addQualifier(pair[0], "")
			continue
		}
		f.addQualifier(pair[0], strings.Trim(strings.TrimSpace(pair[1]), "\""))
	}
}
