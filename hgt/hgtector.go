package hgt

import (
	"io"
	"strings"

	"github.com/grailbio/base/log"
)

// Columns of an HGTector result table.
const (
	htQueryID    = 0
	htPutative   = 7
	htPctID      = 10
	htPctCov     = 11
	htDonorTaxID = 12
	htDonorSp    = 13
	htDonorLin   = 14
	htNumColumns = 15
)

// hgtectorColumns are the columns of an output record: query id, donor
// taxon id, donor species, donor lineage, percent identity and percent
// coverage.
var hgtectorColumns = []int{htQueryID, htDonorTaxID, htDonorSp, htDonorLin, htPctID, htPctCov}

// filterHgtector returns one record per row that has exactly 15 columns and
// is flagged putative ("1" in column 7).  Other rows are skipped.
func filterHgtector(r io.Reader) (string, error) {
	var (
		scanner = newLineScanner(r)
		out     = newRecordWriter()
		rows    int
	)
	for scanner.Scan() {
		rows++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != htNumColumns || fields[htPutative] != "1" {
			continue
		}
		if err := out.Write(fields, hgtectorColumns); err != nil {
			return "", err
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	log.Debug.Printf("hgtector: kept %d of %d row(s)", out.Len(), rows)
	return out.String()
}
