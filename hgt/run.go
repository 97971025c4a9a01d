package hgt

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
)

// Opts configures one Run.
type Opts struct {
	// Method selects the report format.
	Method Method
	// Genes resolves coordinates to gene names.  Required for EGID and
	// GeneMark, ignored otherwise.
	Genes GeneSource
	// LowLPI and HighLPI bound the DarkHorse LPI score.  A row is kept iff
	// LowLPI < LPI < HighLPI.
	LowLPI, HighLPI float64
	// BestHitsPath, if nonempty, receives every DarkHorse best-hit id, one
	// per line.  An existing file is overwritten.
	BestHitsPath string
}

// DefaultOpts holds the default LPI bounds.
var DefaultOpts = Opts{
	LowLPI:  0.0,
	HighLPI: 0.6,
}

func (o Opts) check() error {
	if o.Method <= InvalidMethod || o.Method >= numMethods {
		return errors.E(errors.NotSupported, "method is not supported:", o.Method.String())
	}
	if o.Method.NeedsAnnotation() && o.Genes == nil {
		return errors.E(errors.Precondition, o.Method.String(), "requires a genome annotation")
	}
	return nil
}

// Run parses the report read from r and returns its canonical form.
// Configuration errors are reported before r is read.
func Run(ctx context.Context, r io.Reader, opts Opts) (string, error) {
	if err := opts.check(); err != nil {
		return "", err
	}
	switch opts.Method {
	case RangerDTL, TREX, Jane4, RiataHGT:
		return extractMarker(r, markers[opts.Method])
	case Consel:
		return parseConsel(r)
	case DarkHorse:
		out, bestHits, err := filterDarkHorse(r, opts.LowLPI, opts.HighLPI)
		if err != nil {
			return "", err
		}
		if opts.BestHitsPath != "" {
			if err := writeLines(ctx, opts.BestHitsPath, bestHits); err != nil {
				return "", err
			}
		}
		return out, nil
	case HGTector:
		return filterHgtector(r)
	case EGID:
		return attributeEgid(opts.Genes.Genes(codingFeature, geneIDQualifier), r)
	case GeneMark:
		return attributeGenemark(opts.Genes.Genes(codingFeature, geneIDQualifier), r)
	}
	panic(opts.Method)
}

// RunPath is Run on the report stored at path.  Compressed reports are
// decompressed transparently.
func RunPath(ctx context.Context, path string, opts Opts) (out string, err error) {
	if err = opts.check(); err != nil {
		return
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	return Run(ctx, r, opts)
}

// writeLines writes lines, newline-separated, to path.  Callers invoke it
// only after the whole report has been parsed.
func writeLines(ctx context.Context, path string, lines []string) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	if _, err = io.WriteString(out.Writer(ctx), strings.Join(lines, "\n")); err != nil {
		return err
	}
	log.Debug.Printf("%s: wrote %d line(s)", path, len(lines))
	return nil
}
