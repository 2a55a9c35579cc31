// Command fourbar solves the position problem of a planar four-bar linkage.
//
// Usage:
//
//	fourbar -a 10 -b 20 -c 15 -d 18 -angle 45
//	fourbar -a 20 -b 60 -c 50 -d 70 -start 0 -stop 360 -step 10 -xlsx sweep.xlsx
//	fourbar -config session.yaml
//	fourbar                       # prompts for the link lengths and angle
//
// A single-angle query appends a row to results.csv; a sweep writes
// sweep_results.csv. -csv overrides either path, -xlsx adds a workbook and
// -plots renders every solvable configuration into a directory.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/fourbar/config"
	"github.com/katalvlaran/fourbar/export"
	"github.com/katalvlaran/fourbar/render"
	"github.com/katalvlaran/fourbar/sweep"
)

// Default result files, matching the two query modes.
const (
	defaultSingleCSV = "results.csv"
	defaultSweepCSV  = "sweep_results.csv"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.New(os.Stderr, "fourbar: ", 0).Fatal(err)
	}
}

// run parses args, collects any missing input from stdin, solves and
// writes the requested outputs.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fourbar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "YAML session file (overrides the other input flags)")
		a        = fs.Float64("a", 0, "crank length a (prompted when 0)")
		b        = fs.Float64("b", 0, "coupler length b (prompted when 0)")
		c        = fs.Float64("c", 0, "rocker length c (prompted when 0)")
		d        = fs.Float64("d", 0, "ground length d (prompted when 0)")
		angle    = fs.String("angle", "", "single input angle deg2 in degrees; empty runs a sweep")
		start    = fs.Float64("start", 0, "sweep start in degrees")
		stop     = fs.Float64("stop", 360, "sweep stop in degrees (inclusive)")
		step     = fs.Float64("step", 10, "sweep step in degrees")
		csvPath  = fs.String("csv", "", "CSV output path (default "+defaultSingleCSV+" or "+defaultSweepCSV+")")
		xlsxPath = fs.String("xlsx", "", "optional .xlsx output path")
		plotsDir = fs.String("plots", "", "optional directory for PNG renderings")
		workers  = fs.Int("workers", 1, "goroutines used by the sweep")
		verbose  = fs.Bool("v", false, "log the Grashof class and unsolved angles")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		session config.Session
		err     error
	)
	if *cfgPath != "" {
		session, err = config.Load(*cfgPath)
	} else {
		f := config.File{
			Links:   config.Links{A: *a, B: *b, C: *c, D: *d},
			Output:  config.Output{CSV: *csvPath, XLSX: *xlsxPath, Plots: *plotsDir},
			Workers: *workers,
			Verbose: *verbose,
		}
		if err = collect(&f, *angle, stdin, stdout); err != nil {
			return err
		}
		if f.Angle == nil {
			f.Sweep = &config.Range{Start: *start, Stop: *stop, Step: *step}
		}
		session, err = f.Session()
	}
	if err != nil {
		return err
	}

	logger := log.New(stderr, "", 0)
	res, err := sweep.Run(session.Links, session.Plan, append(session.Options(), sweep.WithLogger(logger))...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\n%s\n", res.Class.Describe())
	if res.Mode == sweep.ModeSingle {
		printSingle(stdout, res.Samples[0])
	} else {
		if err = printSweep(stdout, res); err != nil {
			return err
		}
	}

	return writeOutputs(stdout, session.Output, res)
}

// collect fills missing link lengths (and, when prompting, the angle)
// from stdin. Nothing is read when every length was given.
func collect(f *config.File, angleFlag string, stdin io.Reader, stdout io.Writer) error {
	if angleFlag != "" {
		v, err := strconv.ParseFloat(angleFlag, 64)
		if err != nil {
			return fmt.Errorf("-angle: %w", err)
		}
		f.Angle = &v
	}

	lengths := []struct {
		name string
		dst  *float64
	}{
		{"a", &f.Links.A}, {"b", &f.Links.B}, {"c", &f.Links.C}, {"d", &f.Links.D},
	}
	prompting := false
	for _, l := range lengths {
		if *l.dst == 0 {
			prompting = true
		}
	}
	if !prompting {
		return nil
	}

	sc := bufio.NewScanner(stdin)
	ask := func(prompt string) (string, error) {
		fmt.Fprint(stdout, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}

			return "", io.ErrUnexpectedEOF
		}

		return strings.TrimSpace(sc.Text()), nil
	}

	for _, l := range lengths {
		if *l.dst != 0 {
			continue
		}
		text, err := ask(fmt.Sprintf("Enter the length of link %s in mm: ", l.name))
		if err != nil {
			return fmt.Errorf("link %s: %w", l.name, err)
		}
		if *l.dst, err = strconv.ParseFloat(text, 64); err != nil {
			return fmt.Errorf("link %s: %w", l.name, err)
		}
	}

	if f.Angle == nil {
		text, err := ask("Enter the input angle deg2 in degrees (blank for a full sweep): ")
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("deg2: %w", err)
		}
		if text != "" {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return fmt.Errorf("deg2: %w", err)
			}
			f.Angle = &v
		}
	}

	return nil
}

// printSingle reports one crank angle the way the interactive tool does.
func printSingle(w io.Writer, s sweep.Sample) {
	r := s.Result
	fmt.Fprintf(w, "\nResults for deg2 = %.2f degrees\n", s.Deg2)
	fmt.Fprintf(w, "deg4 open    = %s degrees\n", r.Deg4Open)
	fmt.Fprintf(w, "deg4 crossed = %s degrees\n", r.Deg4Crossed)
	fmt.Fprintf(w, "deg3 open    = %s degrees\n", r.Deg3Open)
	fmt.Fprintf(w, "deg3 crossed = %s degrees\n", r.Deg3Crossed)
}

// printSweep writes the sweep as an aligned table.
func printSweep(w io.Writer, res sweep.AnalysisRun) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(export.SweepHeader, "\t")+"\t")
	for _, s := range res.Samples {
		r := s.Result
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%s\t%s\t\n", s.Deg2, r.Deg3Open, r.Deg3Crossed, r.Deg4Open, r.Deg4Crossed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if missing := res.Unsolved(); len(missing) > 0 {
		fmt.Fprintf(w, "\nNo real assembly at %d of %d angles.\n", len(missing), res.Len())
	}

	return nil
}

// writeOutputs persists res to every destination named in out.
func writeOutputs(stdout io.Writer, out config.Output, res sweep.AnalysisRun) error {
	csvPath := out.CSV
	if res.Mode == sweep.ModeSingle {
		if csvPath == "" {
			csvPath = defaultSingleCSV
		}
		if err := export.AppendSingleCSV(csvPath, res); err != nil {
			return err
		}
	} else {
		if csvPath == "" {
			csvPath = defaultSweepCSV
		}
		if err := export.SaveSweepCSV(csvPath, res); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "\nResults exported to %s\n", csvPath)

	if out.XLSX != "" {
		if err := export.SaveSweepXLSX(out.XLSX, res); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Workbook written to %s\n", out.XLSX)
	}

	if out.Plots != "" {
		count := 0
		for _, s := range res.Samples {
			paths, err := render.SaveConfigurations(out.Plots, res.Links, s)
			if err != nil {
				return err
			}
			count += len(paths)
		}
		fmt.Fprintf(stdout, "%d %s rendered into %s\n", count, plural(count, "figure"), out.Plots)
	}

	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
