package annotation

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/grailbio/base/errors"
)

// gffAttributeCol is the 0-based column of the attribute field.
const gffAttributeCol = 8

// ReadGFF parses a GFF file.  Both GFF2 ("tag value") and GFF3
// ("tag=value") attribute columns are accepted.  Directive and comment
// lines are dropped, and an embedded "##FASTA" section ends the input.
//
// The gff reader only accepts GFF2 tags made of letters and '_', so it is
// given the first eight columns, and the attribute column is parsed here.
func ReadGFF(r io.Reader) (Features, error) {
	body, attrs, err := gffBody(r)
	if err != nil {
		return nil, err
	}
	var features Features
	sc := featio.NewScanner(gff.NewReader(body))
	for sc.Next() {
		f := sc.Feat().(*gff.Feature)
		feat := Feature{
			Type:   f.Feature,
			Start:  f.FeatStart + 1, // gff.Feature positions are 0-based, half-open.
			End:    f.FeatEnd,
			Strand: gffStrand(f.FeatStrand),
		}
		parseGFFAttributes(&feat, attrs[len(features)])
		features = append(features, feat)
	}
	if err := sc.Error(); err != nil {
		return nil, errors.E(errors.Invalid, "gff", err)
	}
	return features, nil
}

// gffBody copies the feature lines of r into memory, without their
// attribute columns.  attrs[i] is the attribute column of the i'th line,
// or "" if it has none.
func gffBody(r io.Reader) (body io.Reader, attrs []string, err error) {
	var (
		buf     bytes.Buffer
		scanner = bufio.NewScanner(r)
		lineIdx int
	)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "##FASTA") {
			break
		}
		if line == "" || line[0] == '#' {
			continue
		}
		cols := strings.SplitN(line, "\t", gffAttributeCol+1)
		if len(cols) < gffAttributeCol {
			return nil, nil, errors.E(errors.Invalid, fmt.Sprintf("gff line %d: %d column(s), want at least %d", lineIdx, len(cols), gffAttributeCol))
		}
		attr := ""
		if len(cols) > gffAttributeCol {
			// A GFF2 comment column may follow the attributes.
			attr = strings.SplitN(cols[gffAttributeCol], "\t", 2)[0]
		}
		attrs = append(attrs, attr)
		buf.WriteString(strings.Join(cols[:gffAttributeCol], "\t"))
		buf.WriteByte('\n')
	}
	return &buf, attrs, scanner.Err()
}

// parseGFFAttributes adds the ';'-separated attributes of column to f.  A
// pair whose first '=' comes before any blank is GFF3 "tag=value", with
// percent-encoded characters decoded; anything else is GFF2 "tag value".
// Surrounding double quotes are removed from values.
func parseGFFAttributes(f *Feature, column string) {
	for _, pair := range strings.Split(column, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		var key, value string
		eq := strings.IndexByte(pair, '=')
		sp := strings.IndexAny(pair, " \t")
		switch {
		case eq >= 0 && (sp < 0 || eq < sp):
			key, value = pair[:eq], pair[eq+1:]
			if v, err := url.PathUnescape(value); err == nil {
				value = v
			}
		case sp >= 0:
			key, value = pair[:sp], strings.TrimSpace(pair[sp+1:])
		default:
			key = pair
		}
		f.addQualifier(key, strings.Trim(value, `"`))
	}
}

func gffStrand(s seq.Strand) string {
	switch s {
	case seq.Plus:
		return Forward
	case seq.Minus:
		return Reverse
	}
	return Unknown
}
