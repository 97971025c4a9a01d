package hgt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

const (
	// conselHeaderLines precede the per-tree rows of a catpv report.
	conselHeaderLines = 3
	// conselAUCol is the approximately-unbiased p-value column.  Rows start
	// with "#", so this is the fifth whitespace-delimited token.
	conselAUCol = 4
)

// parseConsel returns the AU p-values of a CONSEL catpv report, formatted
// with two decimals and newline-joined in input order.  Values outside
// [0, 1] are dropped.
func parseConsel(r io.Reader) (string, error) {
	scanner := newLineScanner(r)
	for i := 0; i < conselHeaderLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.E(errors.Invalid, fmt.Sprintf("consel report has %d line(s), want at least %d", i, conselHeaderLines))
		}
	}
	var (
		pvalues []string
		lineIdx = conselHeaderLines
	)
	for scanner.Scan() {
		lineIdx++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= conselAUCol {
			return "", errors.E(errors.Invalid, fmt.Sprintf("consel line %d: %d field(s), want at least %d", lineIdx, len(fields), conselAUCol+1))
		}
		au, err := strconv.ParseFloat(fields[conselAUCol], 64)
		if err != nil {
			return "", errors.E(errors.Invalid, fmt.Sprintf("consel line %d", lineIdx), err)
		}
		if 0 <= au && au <= 1 {
			pvalues = append(pvalues, fmt.Sprintf("%.2f", au))
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	log.Debug.Printf("consel: %d p-value(s) from %d row(s)", len(pvalues), lineIdx-conselHeaderLines)
	return strings.Join(pvalues, "\n"), nil
}
