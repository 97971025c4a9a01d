package hgt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Columns of a DarkHorse smry file.
const (
	dhQueryID    = 0
	dhBestHitID  = 3
	dhNormLPI    = 4
	dhLPI        = 5
	dhPctID      = 6
	dhPctCov     = 9
	dhTaxID      = 12
	dhSpecies    = 13
	dhLineage    = 14
	dhMinColumns = dhLineage + 1
)

// darkHorseColumns are the columns of an output record: query id, best-hit
// id, taxon id, species, lineage, percent identity, percent coverage and
// normalized LPI.
var darkHorseColumns = []int{dhQueryID, dhBestHitID, dhTaxID, dhSpecies, dhLineage, dhPctID, dhPctCov, dhNormLPI}

// filterDarkHorse returns the records whose LPI score lies strictly inside
// (low, high), and the best-hit identifier of every row, deduplicated in
// order of first appearance.  The first line is a header.
func filterDarkHorse(r io.Reader, low, high float64) (records string, bestHits []string, err error) {
	scanner := newLineScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", nil, err
		}
		return "", nil, errors.E(errors.Invalid, "darkhorse report has no header line")
	}
	var (
		out     = newRecordWriter()
		hits    = newIDSet()
		lineIdx = 1
		rows    int
	)
	for scanner.Scan() {
		lineIdx++
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows++
		fields := strings.Split(line, "\t")
		if len(fields) <= dhLPI {
			return "", nil, errors.E(errors.Invalid, fmt.Sprintf("darkhorse line %d: %d field(s), want %d", lineIdx, len(fields), dhMinColumns))
		}
		hits.Add(fields[dhBestHitID])
		lpi, err := strconv.ParseFloat(strings.TrimSpace(fields[dhLPI]), 64)
		if err != nil {
			return "", nil, errors.E(errors.Invalid, fmt.Sprintf("darkhorse line %d: LPI", lineIdx), err)
		}
		if !(low < lpi && lpi < high) {
			continue
		}
		if len(fields) < dhMinColumns {
			return "", nil, errors.E(errors.Invalid, fmt.Sprintf("darkhorse line %d: %d field(s), want %d", lineIdx, len(fields), dhMinColumns))
		}
		if err := out.Write(fields, darkHorseColumns); err != nil {
			return "", nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return "", nil, err
	}
	log.Debug.Printf("darkhorse: kept %d of %d row(s) with %v < LPI < %v; %d best-hit id(s)",
		out.Len(), rows, low, high, hits.Len())
	if records, err = out.String(); err != nil {
		return "", nil, err
	}
	return records, hits.Ordered(), nil
}
