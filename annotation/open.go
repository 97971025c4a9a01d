package annotation

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// Format identifies an annotation file format.
type Format int

const (
	// UnknownFormat is returned by FormatFromPath for unrecognized names.
	UnknownFormat Format = iota
	// GenBank flat file.
	GenBank
	// GFF (GFF2 or GFF3).
	GFF
	// GTF (GFF2 with the Ensembl/GENCODE attribute convention).
	GTF
)

func (f Format) String() string {
	switch f {
	case GenBank:
		return "genbank"
	case GFF:
		return "gff"
	case GTF:
		return "gtf"
	}
	return "unknown"
}

var compressionSuffixes = []string{".gz", ".bz2", ".zst"}

// FormatFromPath guesses the format from the file name.  A trailing
// compression suffix is ignored.
func FormatFromPath(path string) Format {
	name := strings.ToLower(path)
	for _, s := range compressionSuffixes {
		name = strings.TrimSuffix(name, s)
	}
	switch filepath.Ext(name) {
	case ".gb", ".gbk", ".gbff", ".genbank":
		return GenBank
	case ".gff", ".gff3":
		return GFF
	case ".gtf":
		return GTF
	}
	return UnknownFormat
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) (Features, error) {
	switch format {
	case GenBank:
		return ReadGenBank(r)
	case GFF:
		return ReadGFF(r)
	case GTF:
		return ReadGTF(r)
	}
	return nil, errors.E(errors.NotSupported, "annotation format", format.String())
}

// Open reads the annotation file at path.  The format is chosen by
// FormatFromPath, and compressed files are decompressed transparently.
func Open(ctx context.Context, path string) (features Features, err error) {
	format := FormatFromPath(path)
	if format == UnknownFormat {
		return nil, errors.E(errors.NotSupported, "unrecognized annotation file suffix:", path)
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	if features, err = Read(r, format); err != nil {
		return nil, errors.E(err, path)
	}
	log.Debug.Printf("%s: read %d %s features", path, len(features), format)
	return features, nil
}
