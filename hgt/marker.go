package hgt

import (
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
)

// NaN is returned by the marker methods when the report has no marker line.
const NaN = "NaN"

// markerTriple locates the transfer count in a free-text report.  The count
// is read from the first line containing marker: it follows the first
// occurrence of left and runs up to the first occurrence of right.
type markerTriple struct {
	marker, left, right string
}

var markers = map[Method]markerTriple{
	RangerDTL: {
		marker: "The minimum reconciliation cost is: ",
		left:   "Transfers: ",
		right:  ", Losses",
	},
	TREX: {
		marker: "hgt : number of HGT(s) found = ",
		left:   "hgt : number of HGT(s) found = ",
		right:  " ",
	},
	Jane4: {
		marker: "Host Switch: ",
		left:   "Host Switch: ",
		right:  " ",
	},
	RiataHGT: {
		marker: "There are ",
		left:   "There are ",
		right:  " component(s)",
	},
}

// extractMarker returns the token bounded by m on the first line of r that
// contains m.marker, or NaN if there is no such line.  Lines after the match
// are not read.  A missing right delimiter leaves the rest of the line as the
// token; a missing left delimiter is an errors.Invalid error.
func extractMarker(r io.Reader, m markerTriple) (string, error) {
	scanner := newLineScanner(r)
	for lineIdx := 1; scanner.Scan(); lineIdx++ {
		line := scanner.Text()
		if !strings.Contains(line, m.marker) {
			continue
		}
		line = strings.TrimSpace(line)
		i := strings.Index(line, m.left)
		if i < 0 {
			return "", errors.E(errors.Invalid, fmt.Sprintf("line %d: found %q but no %q",
				lineIdx, strings.TrimSpace(m.marker), strings.TrimSpace(m.left)))
		}
		token := line[i+len(m.left):]
		if j := strings.Index(token, m.right); j >= 0 {
			token = token[:j]
		}
		return token, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return NaN, nil
}
