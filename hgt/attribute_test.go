package hgt

import (
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hgtparse/annotation"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var testGenes = []annotation.Gene{
	{ID: "NP_3", Start: 100, End: 200, Strand: "+"},
	{ID: "NP_1", Start: 150, End: 400, Strand: "-"},
	{ID: "NP_2", Start: 500, End: 650, Strand: "+"},
	{ID: "NP_4", Start: 700, End: 900, Strand: "-"},
}

func TestEgid(t *testing.T) {
	report := strings.Join([]string{
		"100 400 island1",
		"",
		"650",
		"  500\t650  ",
		"90 210",
		"701 1000",
	}, "\n")
	got, err := attributeEgid(testGenes, strings.NewReader(report))
	assert.NoError(t, err)
	// NP_3 is inside two islands but listed once; NP_4 starts before 701.
	expect.EQ(t, got, "NP_1\nNP_2\nNP_3")

	got, err = attributeEgid(testGenes, strings.NewReader("1 50\n"))
	assert.NoError(t, err)
	expect.EQ(t, got, "")

	got, err = attributeEgid(nil, strings.NewReader("1 50\n"))
	assert.NoError(t, err)
	expect.EQ(t, got, "")

	_, err = attributeEgid(testGenes, strings.NewReader("100 400\nstart end\n"))
	expect.True(t, errors.Is(errors.Invalid, err), "%v", err)
}

const genemarkReport = `GeneMark.hmm PROKARYOTIC (Version 3.25)
Sequence file name: genome.fna, RBS: true
Model file name: genome.mod
   1   +         100         200         101  2

Predicted genes
   Gene    Strand    LeftEnd    RightEnd       Gene     Class
    #                                         Length
    1        +         100         200         101        2
    2        -        <150        >400         251        2
    3        +         500         650         151        1
    4        +         700         900         201        2
    5        -         700         900         201        2
    6        -         700         900         201        2
`

func TestGenemark(t *testing.T) {
	got, err := attributeGenemark(testGenes, strings.NewReader(genemarkReport))
	assert.NoError(t, err)
	// The class-2 row above the "# Length" header is ignored; NP_2 is
	// class 1; row 4 is on the wrong strand.  Rows 5 and 6 both match NP_4,
	// which is therefore listed twice.
	expect.EQ(t, got, "NP_1\nNP_3\nNP_4\nNP_4")

	got, err = attributeGenemark(testGenes, strings.NewReader(strings.Replace(genemarkReport, "    #  ", "    ## ", 1)))
	assert.NoError(t, err)
	expect.EQ(t, got, "")

	_, err = attributeGenemark(testGenes, strings.NewReader("# Length\n1 + 1 x 10 2\n"))
	expect.True(t, errors.Is(errors.Invalid, err), "%v", err)
}
