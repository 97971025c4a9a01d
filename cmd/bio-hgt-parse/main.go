package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hgtparse/annotation"
	"github.com/grailbio/hgtparse/hgt"
	"v.io/x/lib/cmdline"
)

type parseFlags struct {
	method         string
	hgtResultsPath string
	genbankPath    string
	lowLPI         float64
	highLPI        float64
	bestHitsPath   string
}

func methodNames() string {
	var names []string
	for _, m := range hgt.Methods() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "bio-hgt-parse",
		Short: "Normalize the output of HGT detection tools",
		Long: `
bio-hgt-parse reads the report of an HGT detection tool and prints it in a
canonical form on stdout.  Supported methods: ` + methodNames() + `.
`,
	}
	var flags parseFlags
	cmd.Flags.StringVar(&flags.method, "method", "", "The method used for HGT detection; one of "+methodNames())
	cmd.Flags.StringVar(&flags.hgtResultsPath, "hgt-results-fp", "", "Output file containing HGT information")
	cmd.Flags.StringVar(&flags.genbankPath, "genbank-fp", "", "Genome annotation (GenBank, GFF or GTF); required for egid and genemark")
	cmd.Flags.Float64Var(&flags.lowLPI, "darkhorse-low-lpi", hgt.DefaultOpts.LowLPI, "Lower bound LPI score")
	cmd.Flags.Float64Var(&flags.highLPI, "darkhorse-high-lpi", hgt.DefaultOpts.HighLPI, "Upper bound LPI score")
	cmd.Flags.StringVar(&flags.bestHitsPath, "darkhorse-output-fp", "", "Output all best hit IDs from DarkHorse summary")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("bio-hgt-parse takes no positional arguments, but got %v", argv)
		}
		return parse(vcontext.Background(), flags, env.Stdout)
	})
	return cmd
}

// parse validates flags, runs the parser and writes its output to stdout.
func parse(ctx context.Context, flags parseFlags, stdout io.Writer) error {
	method, err := hgt.ParseMethod(flags.method)
	if err != nil {
		return err
	}
	if flags.hgtResultsPath == "" {
		return errors.E(errors.Invalid, "-hgt-results-fp is required")
	}
	if err := checkExists(ctx, flags.hgtResultsPath); err != nil {
		return err
	}
	opts := hgt.Opts{
		Method:       method,
		LowLPI:       flags.lowLPI,
		HighLPI:      flags.highLPI,
		BestHitsPath: flags.bestHitsPath,
	}
	if method.NeedsAnnotation() {
		if flags.genbankPath == "" {
			return errors.E(errors.Invalid, fmt.Sprintf("-genbank-fp is required for -method=%v", method))
		}
		if err := checkExists(ctx, flags.genbankPath); err != nil {
			return err
		}
		features, err := annotation.Open(ctx, flags.genbankPath)
		if err != nil {
			return err
		}
		opts.Genes = features
	}
	out, err := hgt.RunPath(ctx, flags.hgtResultsPath, opts)
	if err != nil {
		return err
	}
	if method == hgt.DarkHorse && flags.bestHitsPath != "" {
		log.Printf("wrote best hit ids to %s", flags.bestHitsPath)
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func checkExists(ctx context.Context, path string) error {
	if _, err := file.Stat(ctx, path); err != nil {
		return errors.E(errors.NotExist, path, err)
	}
	return nil
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
