// Package main provides the detkit CLI.
//
// Usage:
//
//	detkit [-policy simple|qr|rref] [-v] MATRIX...
//	detkit version
//
// Each MATRIX is written row by row, rows separated by ';' and columns by
// ',', for example "1,2;3,4". Every matrix is checked against the policy
// before anything is computed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/born-ml/detkit/linalg"
)

const version = "v0.1.0-dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "detkit %s\n", version)
		return exitOK
	}

	fs := flag.NewFlagSet("detkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	policyName := fs.String("policy", "simple", "determinant policy (simple, qr, rref)")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: detkit [flags] MATRIX...\n\nMATRIX rows are separated by ';', columns by ','.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log := newLogger(stderr, *verbose)

	policy, err := linalg.ParsePolicy(*policyName)
	if err != nil {
		log.Error().Err(err).Msg("invalid -policy")
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	log.Debug().
		Str("policy", policy.String()).
		Str("kernel", linalg.KernelVariant()).
		Int("matrices", fs.NArg()).
		Msg("starting")

	jobs := make([]job, 0, fs.NArg())
	for i, arg := range fs.Args() {
		data, n, err := parseMatrix(arg)
		if err != nil {
			log.Error().Err(err).Int("matrix", i+1).Msg("cannot parse matrix")
			return exitUsage
		}
		strategy, err := linalg.Resolve(policy, n)
		if err != nil {
			log.Error().Err(err).Int("matrix", i+1).Int("extent", n).Msg("unsupported policy for matrix size")
			return exitUsage
		}
		log.Debug().Int("matrix", i+1).Int("extent", n).Stringer("strategy", strategy).Msg("resolved")
		jobs = append(jobs, job{data: data, n: n, strategy: strategy})
	}

	for i, j := range jobs {
		res, err := compute(j)
		if err != nil {
			log.Error().Err(err).Int("matrix", i+1).Msg("computation failed")
			return exitError
		}
		fmt.Fprintf(stdout, "matrix %d (%dx%d): det=%s absdet=%s logdet=%s\n",
			i+1, j.n, j.n, formatFloat(res.det), formatFloat(res.absDet), formatFloat(res.logDet))
	}
	return exitOK
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
