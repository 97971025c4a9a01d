package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const testGenBank = `LOCUS       TEST                    1000 bp    DNA     linear
FEATURES             Location/Qualifiers
     CDS             100..200
                     /protein_id="NP_2"
     CDS             complement(300..450)
                     /protein_id="NP_1"
     CDS             600..900
                     /protein_id="NP_3"
ORIGIN
//
`

func writeTestFile(t *testing.T, dir, name, data string) string {
	path := filepath.Join(dir, name)
	assert.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func TestParse(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	genbank := writeTestFile(t, tempDir, "genome.gbk", testGenBank)

	tests := []struct {
		flags parseFlags
		want  string
	}{
		{
			parseFlags{method: "trex", hgtResultsPath: writeTestFile(t, tempDir, "trex.out", "hgt : number of HGT(s) found = 4 foo\n")},
			"4",
		},
		{
			parseFlags{method: "jane4", hgtResultsPath: writeTestFile(t, tempDir, "jane.out", "Cost: 5\n")},
			"NaN",
		},
		{
			parseFlags{method: "egid", hgtResultsPath: writeTestFile(t, tempDir, "egid.txt", "50 500\n"), genbankPath: genbank},
			"NP_1\nNP_2",
		},
		{
			parseFlags{method: "genemark", hgtResultsPath: writeTestFile(t, tempDir, "gm.lst", "# Length\n3 + 600 900 301 2\n"), genbankPath: genbank},
			"NP_3",
		},
	}
	for _, test := range tests {
		var out bytes.Buffer
		assert.NoError(t, parse(ctx, test.flags, &out))
		expect.EQ(t, out.String(), test.want, "%+v", test.flags)
	}
}

func TestParseDarkHorseBestHits(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	row := func(query, bestHit, lpi string) string {
		return strings.Join([]string{
			query, "120", "1", bestHit, "0.10", lpi, "98.5", "1", "0", "95.0",
			"1e-50", "200", "562", "Escherichia coli", "Bacteria;Proteobacteria",
		}, "\t")
	}
	smry := writeTestFile(t, tempDir, "smry.tsv", strings.Join([]string{
		"query_id\tquery_length\tquery_count\tbest_hit_id\tnorm_LPI\tLPI\tpct_id\tbest_hit_count\tgap\tpct_coverage\tevalue\tbitscore\ttax_id\tspecies\tlineage",
		row("q1", "WP_2", "0.30"),
		row("q2", "WP_1", "0.60"),
		row("q3", "WP_2", "0.05"),
	}, "\n")+"\n")
	bestHits := filepath.Join(tempDir, "best_hits.txt")
	assert.NoError(t, ioutil.WriteFile(bestHits, []byte("stale\n"), 0644))

	flags := parseFlags{
		method:         "darkhorse",
		hgtResultsPath: smry,
		lowLPI:         0.1,
		highLPI:        0.6,
		bestHitsPath:   bestHits,
	}
	var out bytes.Buffer
	assert.NoError(t, parse(ctx, flags, &out))
	expect.EQ(t, out.String(), "q1\tWP_2\t562\tEscherichia coli\tBacteria;Proteobacteria\t98.5\t95.0\t0.10")
	data, err := ioutil.ReadFile(bestHits)
	assert.NoError(t, err)
	expect.EQ(t, string(data), "WP_2\nWP_1")
}

func TestParseErrors(t *testing.T) {
	ctx := context.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	report := writeTestFile(t, tempDir, "report.txt", "1 2\n")

	tests := []struct {
		flags parseFlags
		kind  errors.Kind
	}{
		{parseFlags{method: "tree-puzzle", hgtResultsPath: report}, errors.NotSupported},
		{parseFlags{method: "trex"}, errors.Invalid},
		{parseFlags{method: "trex", hgtResultsPath: filepath.Join(tempDir, "missing")}, errors.NotExist},
		{parseFlags{method: "egid", hgtResultsPath: report}, errors.Invalid},
		{parseFlags{method: "egid", hgtResultsPath: report, genbankPath: filepath.Join(tempDir, "missing.gbk")}, errors.NotExist},
		{parseFlags{method: "egid", hgtResultsPath: report, genbankPath: report}, errors.NotSupported},
	}
	for _, test := range tests {
		var out bytes.Buffer
		err := parse(ctx, test.flags, &out)
		expect.True(t, errors.Is(test.kind, err), "%+v: %v", test.flags, err)
		expect.EQ(t, out.Len(), 0)
	}
}
