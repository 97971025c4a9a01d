package annotation

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	perrors "github.com/pkg/errors"
)

// GenBank feature table columns.  A feature key starts at column 5, and the
// location or a qualifier starts at column 21 (0-based offsets below).
const (
	gbKeyCol   = 5
	gbValueCol = 21
)

// gbBoundRE matches one "a..b" or single-base "a" element of a location,
// with optional partial markers ('<', '>').  "a^b" (between bases) is
// treated like "a..b".
var gbBoundRE = regexp.MustCompile(`[<>]?(\d+)(?:(?:\.\.|\^)[<>]?(\d+))?`)

// ReadGenBank parses the FEATURES section of the first record in r.  Reading
// stops at the record's "//" terminator, so later records (other contigs,
// with their own coordinates) are ignored.  Sequence data and header fields
// are skipped.
func ReadGenBank(r io.Reader) (Features, error) {
	var (
		scanner  = bufio.NewScanner(r)
		features Features
		inTable  bool
		lineIdx  int
		cur      *Feature
		// location text of cur, which may span several lines.
		loc string
		// qualifier being accumulated, and whether it is inside an
		// unterminated quoted value.
		qualKey, qualVal string
		inQuote          bool
		err              error
	)
	scanner.Buffer(make([]byte, 64<<10), 16<<20)

	flushQualifier := func() {
		if cur != nil && qualKey != "" {
			cur.addQualifier(qualKey, qualVal)
		}
		qualKey, qualVal, inQuote = "", "", false
	}
	flushFeature := func() {
		if cur == nil {
			return
		}
		flushQualifier()
		if loc != "" {
			if cur.Start, cur.End, cur.Strand, err = parseGenBankLocation(loc); err != nil {
				err = errors.E(errors.Invalid, perrors.Wrapf(err, "genbank line %d", lineIdx))
				return
			}
		}
		features = append(features, *cur)
		cur, loc = nil, ""
	}

	for err == nil && scanner.Scan() {
		lineIdx++
		line := scanner.Text()
		if strings.HasPrefix(line, "//") {
			break
		}
		if !inTable {
			if strings.HasPrefix(line, "FEATURES") {
				inTable = true
			}
			continue
		}
		if len(line) > 0 && line[0] != ' ' {
			// ORIGIN or CONTIG.
			flushFeature()
			inTable = false
			continue
		}
		if inQuote {
			qualVal += " " + strings.TrimSpace(line)
			inQuote = strings.Count(qualVal, `"`)%2 == 1
			continue
		}
		if len(line) > gbKeyCol && line[gbKeyCol] != ' ' {
			flushFeature()
			if err != nil {
				break
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				err = errors.E(errors.Invalid, perrors.Errorf("genbank line %d: feature %q has no location", lineIdx, strings.TrimSpace(line)))
				break
			}
			cur = &Feature{Type: fields[0]}
			loc = strings.Join(fields[1:], "")
			continue
		}
		if cur == nil {
			// The "Location/Qualifiers" header row.
			continue
		}
		value := ""
		if len(line) > gbValueCol {
			value = strings.TrimSpace(line[gbValueCol:])
		} else {
			value = strings.TrimSpace(line)
		}
		if strings.HasPrefix(value, "/") {
			flushQualifier()
			kv := strings.SplitN(value[1:], "=", 2)
			qualKey = kv[0]
			if len(kv) == 2 {
				qualVal = kv[1]
				inQuote = strings.Count(qualVal, `"`)%2 == 1
			}
			continue
		}
		if qualKey == "" {
			// Location continued on the next line.
			loc += value
			continue
		}
		qualVal += " " + value
	}
	if err == nil {
		err = scanner.Err()
	}
	if err == nil && inTable {
		flushFeature()
	}
	if err != nil {
		return nil, err
	}
	return features, nil
}

// parseGenBankLocation returns the span of the first interval of a location
// string, and its strand.  Coordinates are 1-based and closed, as written.
func parseGenBankLocation(loc string) (start, end int, strand string, err error) {
	strand = Forward
	if strings.Contains(loc, "complement(") {
		strand = Reverse
	}
	m := gbBoundRE.FindStringSubmatch(loc)
	if m == nil {
		return 0, 0, "", perrors.Errorf("unparsable location %q", loc)
	}
	if start, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, "", perrors.Wrapf(err, "location %q", loc)
	}
	end = start
	if m[2] != "" {
		if end, err = strconv.Atoi(m[2]); err != nil {
			return 0, 0, "", perrors.Wrapf(err, "location %q", loc)
		}
	}
	return start, end, strand, nil
}
