package hgt

import (
	"github.com/grailbio/base/errors"
)

// Method identifies the tool whose report is being parsed.
type Method int

const (
	// InvalidMethod is the zero Method.
	InvalidMethod Method = iota
	// RangerDTL is RANGER-DTL-U 1.0.
	RangerDTL
	// TREX is T-REX 3.6.
	TREX
	// Jane4 is Jane version 4.
	Jane4
	// RiataHGT is RIATA-HGT 3.5.6.
	RiataHGT
	// Consel is CONSEL 0.20 (catpv output).
	Consel
	// DarkHorse is the DarkHorse summary (smry) file.
	DarkHorse
	// HGTector is HGTector 0.2.1.
	HGTector
	// EGID is the EGID genomic-island coordinate list.
	EGID
	// GeneMark is the GeneMark gene list (*.lst).
	GeneMark

	numMethods
)

var methodNames = [...]string{
	InvalidMethod: "invalid",
	RangerDTL:     "ranger-dtl",
	TREX:          "trex",
	Jane4:         "jane4",
	RiataHGT:      "riata-hgt",
	Consel:        "consel",
	DarkHorse:     "darkhorse",
	HGTector:      "hgtector",
	EGID:          "egid",
	GeneMark:      "genemark",
}

// String returns the command-line name of the method.
func (m Method) String() string {
	if m <= InvalidMethod || m >= numMethods {
		return methodNames[InvalidMethod]
	}
	return methodNames[m]
}

// NeedsAnnotation is true for methods that report coordinates rather than
// gene names, and so need a GeneSource to resolve them.
func (m Method) NeedsAnnotation() bool {
	return m == EGID || m == GeneMark
}

// Methods lists the supported methods in declaration order.
func Methods() []Method {
	methods := make([]Method, 0, numMethods-1)
	for m := InvalidMethod + 1; m < numMethods; m++ {
		methods = append(methods, m)
	}
	return methods
}

// ParseMethod converts a command-line name to a Method.  Unknown names are
// reported as errors.NotSupported.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if methodNames[m] == name {
			return m, nil
		}
	}
	return InvalidMethod, errors.E(errors.NotSupported, "method is not supported:", name)
}
