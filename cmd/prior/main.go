// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prior draws samples from, or evaluates, a distance prior.
//
// Usage:
//
//	prior [flags] sample     print -n samples, one per line
//	prior [flags] describe   summarize -n samples and test them against the CDF
//	prior [flags] pdf        read x values from stdin and print the PDF
//	prior [flags] cdf        read x values from stdin and print the CDF
//
// For example, to sample a King profile at 100 pc with core radius
// 2 pc and tidal radius 20 pc:
//
//	prior -dist king -rt 10 -loc 100 -scale 2 -n 1000 sample
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kalkayotl/priors/prior"
	"github.com/kalkayotl/priors/stats"
	"github.com/op/go-logging"
	"golang.org/x/exp/rand"
)

const progName = "prior"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-8s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// config holds the command line.
type config struct {
	dist    string
	l       float64
	gamma   float64
	rt      float64
	loc     float64
	scale   float64
	n       int
	seed    uint64
	workers int
	debug   bool
	cmd     string
}

func parseFlags(args []string) (*config, error) {
	var c config
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.StringVar(&c.dist, "dist", "edsd", "distribution: edsd, eff, or king")
	fs.Float64Var(&c.l, "L", 1, "EDSD scale length")
	fs.Float64Var(&c.gamma, "gamma", 2, "EFF power-law index, > 1")
	fs.Float64Var(&c.rt, "rt", 10, "King tidal radius in units of the core radius")
	fs.Float64Var(&c.loc, "loc", 0, "location of the distribution")
	fs.Float64Var(&c.scale, "scale", 1, "scale of the distribution (core radius)")
	fs.IntVar(&c.n, "n", 1000, "number of samples")
	fs.Uint64Var(&c.seed, "seed", 1, "random seed")
	fs.IntVar(&c.workers, "workers", 1, "maximum number of concurrent root finders")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("want exactly one command, got %q", fs.Args())
	}
	c.cmd = fs.Arg(0)
	if c.n < 0 {
		return nil, fmt.Errorf("negative sample count %d", c.n)
	}
	return &c, nil
}

// newDist returns the distribution described by c.
func (c *config) newDist() (prior.Dist, error) {
	var d prior.Dist
	var err error
	switch strings.ToLower(c.dist) {
	default:
		return nil, fmt.Errorf("unknown distribution %q", c.dist)
	case "edsd":
		d, err = prior.NewEDSD(c.l)
	case "eff":
		d, err = prior.NewEFF(c.gamma)
	case "king":
		d, err = prior.NewKing(c.rt)
	}
	if err != nil {
		return nil, err
	}
	if c.loc == 0 && c.scale == 1 {
		return d, nil
	}
	return prior.NewScaled(d, c.loc, c.scale)
}

func main() {
	startLogging()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	c, err := parseFlags(args)
	if err != nil {
		return err
	}
	if c.debug && leveledLogBackend != nil {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}
	d, err := c.newDist()
	if err != nil {
		return err
	}
	log.Debugf("using %v", d)

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	switch c.cmd {
	default:
		return fmt.Errorf("unknown command %q", c.cmd)
	case "sample", "describe":
		s := prior.Sampler{Workers: c.workers}
		xs, err := s.Rand(d, rand.New(rand.NewSource(c.seed)), c.n)
		if err != nil {
			return err
		}
		if c.cmd == "sample" {
			for _, x := range xs {
				fmt.Fprintln(w, strconv.FormatFloat(x, 'g', -1, 64))
			}
			return nil
		}
		return describe(w, d, stats.Sample{Xs: xs})
	case "pdf", "cdf":
		xs, err := readInput(stdin)
		if err != nil {
			return err
		}
		var ys []float64
		if c.cmd == "pdf" {
			var warn *prior.DomainWarning
			ys, warn = prior.Evaluate(d, xs)
			if warn != nil {
				log.Warningf("%v: %v", d, warn)
			}
		} else {
			ys = prior.EvaluateCDF(d, xs)
		}
		for i, x := range xs {
			fmt.Fprintf(w, "%g\t%g\n", x, ys[i])
		}
		return nil
	}
}

// describe prints summary statistics of s, which was drawn from d.
func describe(w io.Writer, d prior.Dist, s stats.Sample) error {
	s.Sort()
	fmt.Fprintf(w, "%v\n", d)
	fmt.Fprintf(w, "N %d  mean %.6g  std dev %.6g\n", len(s.Xs), s.Mean(), s.StdDev())
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Percentile(float64(p)))
	}
	fmt.Fprintln(w)

	if len(s.Xs) > 0 {
		// Test against the distribution actually sampled, which
		// for EFF is truncated to its central probability range.
		ks, err := stats.KolmogorovSmirnov(s.Xs, prior.SampledCDF(d))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "K-S vs sampled CDF: D %.4g  p %.4g\n", ks.D, ks.P)
		fmt.Fprintln(w)
	}

	fprintPDF(w, d)
	return nil
}

// fprintPDF prints a text plot of d's density over its bounds.
func fprintPDF(w io.Writer, d prior.Dist) {
	const rows, width = 20, 50
	lo, hi := d.Bounds()
	xs := make([]float64, rows)
	for i := range xs {
		// Evaluate at bin centers, which stay inside open supports.
		xs[i] = lo + (hi-lo)*(float64(i)+0.5)/rows
	}
	ys := d.PDFEach(xs)
	ymax := 0.0
	for _, y := range ys {
		if !math.IsNaN(y) {
			ymax = math.Max(ymax, y)
		}
	}
	for i, y := range ys {
		bar := 0
		if ymax > 0 && !math.IsNaN(y) {
			bar = int(math.Round(y / ymax * width))
		}
		fmt.Fprintf(w, "%12.6g %12.6g %s\n", xs[i], y, strings.Repeat("*", bar))
	}
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		x, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, scanner.Err()
}
