// Command eurofilter smooths tracked time series with a One-Euro filter.
//
// Usage:
//
//	eurofilter [flags]
//
// Input is CSV: the first column is the sample time in seconds, every further
// column is a channel filtered independently. A leading non-numeric row is
// treated as a header and copied to the output.
//
// Examples:
//
//	eurofilter -in wrist.csv -out smoothed.csv -preset hand
//	eurofilter -in wrist.csv -min-cutoff 1.5 -beta 4 -report
//	eurofilter -synth 600 -report -plot demo.png -html demo.html
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/oneeuro"
	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/internal/monitoring"
)

type cliOptions struct {
	in       string
	out      string
	config   string
	preset   string
	report   bool
	plot     string
	html     string
	synth    int
	jitter   float64
	seed     int64
	minCut   float64
	beta     float64
	dCut     float64
	setFlags map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	monitoring.SetLogger(func(format string, v ...interface{}) {
		_, _ = fmt.Fprintf(stderr, format+"\n", v...)
	})

	if err := execute(opts, stdin, stdout, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("eurofilter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &cliOptions{}
	fs.StringVar(&o.in, "in", "-", "input CSV file (- for stdin)")
	fs.StringVar(&o.out, "out", "-", "output CSV file (- for stdout)")
	fs.StringVar(&o.config, "config", "", "JSON filter configuration file")
	fs.StringVar(&o.preset, "preset", "default", "parameter preset: default or hand")
	fs.Float64Var(&o.minCut, "min-cutoff", 0, "minimum cutoff frequency in Hz")
	fs.Float64Var(&o.beta, "beta", 0, "speed coefficient")
	fs.Float64Var(&o.dCut, "d-cutoff", 0, "cutoff frequency of the speed estimate in Hz")
	fs.BoolVar(&o.report, "report", false, "print jitter metrics per channel to stderr")
	fs.StringVar(&o.plot, "plot", "", "write a chart image (.png, .svg, .pdf)")
	fs.StringVar(&o.html, "html", "", "write an interactive HTML chart")
	fs.IntVar(&o.synth, "synth", 0, "generate N samples of a noisy 60 Hz demo signal instead of reading input")
	fs.Float64Var(&o.jitter, "synth-jitter", 0.1, "relative frame interval spread of the demo signal, in [0, 0.9]")
	fs.Int64Var(&o.seed, "seed", 1, "random seed of the demo signal")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: eurofilter [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Smooths CSV time series (time, channel...) with a One-Euro filter.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  eurofilter -in wrist.csv -out smoothed.csv -preset hand\n")
		_, _ = fmt.Fprintf(stderr, "  eurofilter -synth 600 -report -plot demo.png\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return nil, fmt.Errorf("unexpected arguments")
	}

	if !(o.jitter >= 0 && o.jitter <= core.MaxFrameJitter) {
		_, _ = fmt.Fprintf(stderr, "error: -synth-jitter must be in [0, %g]: %g\n", core.MaxFrameJitter, o.jitter)
		return nil, fmt.Errorf("invalid -synth-jitter")
	}

	o.setFlags = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.setFlags[f.Name] = true })

	return o, nil
}

// resolveProperties layers preset, configuration file and explicit flags, in
// that order.
func resolveProperties(o *cliOptions) (oneeuro.Properties, error) {
	props, err := config.Preset(o.preset)
	if err != nil {
		return oneeuro.Properties{}, err
	}

	if o.config != "" {
		cfg, err := config.LoadFilterConfig(o.config)
		if err != nil {
			return oneeuro.Properties{}, err
		}

		props, err = cfg.Apply(props)
		if err != nil {
			return oneeuro.Properties{}, err
		}
	}

	if o.setFlags["min-cutoff"] {
		props.MinCutoff = o.minCut
	}

	if o.setFlags["beta"] {
		props.Beta = o.beta
	}

	if o.setFlags["d-cutoff"] {
		props.DerivativeCutoff = o.dCut
	}

	if err := props.Validate(); err != nil {
		return oneeuro.Properties{}, err
	}

	return props, nil
}

func execute(o *cliOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	props, err := resolveProperties(o)
	if err != nil {
		return err
	}

	var (
		s         *series
		reference [][]float64
	)

	if o.synth > 0 {
		s, reference, err = synthSeries(o.synth, o.jitter, o.seed)
	} else {
		s, err = readInput(o.in, stdin)
	}
	if err != nil {
		return err
	}

	filtered, repeated, err := filterSeries(s, props)
	if err != nil {
		return err
	}

	if repeated > 0 {
		monitoring.Logf("warning: %d rows did not advance in time and repeat the previous value", repeated)
	}

	if err := writeOutput(o.out, stdout, s, filtered); err != nil {
		return err
	}

	if o.report {
		if err := writeReport(stderr, s, filtered, reference, props); err != nil {
			return err
		}
	}

	if o.plot != "" {
		if err := writePlot(o.plot, s, filtered); err != nil {
			return err
		}
	}

	if o.html != "" {
		if err := writeHTML(o.html, s, filtered); err != nil {
			return err
		}
	}

	return nil
}

func readInput(path string, stdin io.Reader) (*series, error) {
	if path == "" || path == "-" {
		return readCSV(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return readCSV(f)
}

func writeOutput(path string, stdout io.Writer, s *series, filtered [][]float64) error {
	if path == "" || path == "-" {
		return writeCSV(stdout, s, filtered)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := writeCSV(f, s, filtered); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	return nil
}
