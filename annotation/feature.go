// Package annotation reads genome annotations (GenBank feature tables, GFF
// and GTF) into a flat list of features, and selects the coding genes that
// the HGT report parsers attribute coordinates to.
package annotation

import (
	"strings"
)

// Strand values used by Feature.
const (
	Forward = "+"
	Reverse = "-"
	Unknown = ""
)

// Feature is one annotated interval.  Start and End are 1-based and closed.
type Feature struct {
	// Type is the feature key, e.g. "CDS" or "gene".
	Type   string
	Start  int
	End    int
	Strand string
	// Qualifiers maps a qualifier name (e.g. "protein_id") to its raw value.
	// Only the first value of a repeated qualifier is kept.
	Qualifiers map[string]string
}

// Gene is the projection of a Feature that the HGT parsers work with.
type Gene struct {
	ID     string
	Start  int
	End    int
	Strand string
}

// Features is an ordered feature list, in file order.
type Features []Feature

// Genes returns the features of the given type that carry the qualifier,
// as genes named by that qualifier's value.  Surrounding double quotes are
// removed from the name.  When several features share a name, only the
// first is kept.  The result is in file order.
func (fs Features) Genes(featureType, qualifier string) []Gene {
	var (
		genes []Gene
		seen  = map[string]struct{}{}
	)
	for _, f := range fs {
		if f.Type != featureType {
			continue
		}
		v, ok := f.Qualifiers[qualifier]
		if !ok {
			continue
		}
		id := strings.Trim(v, `"`)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		genes = append(genes, Gene{ID: id, Start: f.Start, End: f.End, Strand: f.Strand})
	}
	return genes
}

func (f *Feature) addQualifier(key, value string) {
	if f.Qualifiers == nil {
		f.Qualifiers = map[string]string{}
	}
	if _, ok := f.Qualifiers[key]; !ok {
		f.Qualifiers[key] = value
	}
}
