// Command symnmf runs one stage of the SymNMF clustering pipeline on a text
// matrix and prints the result with four decimals.
//
// Usage:
//
//	symnmf [flags] <goal> <file>
//
// Goals:
//
//	sym     similarity matrix A
//	ddg     diagonal degree matrix D
//	norm    normalized similarity W = D^(-1/2) A D^(-1/2)
//	symnmf  final factor H (requires -k)
//
// Flags:
//
//	-k:        number of clusters for the symnmf goal, 1 ≤ k < n
//	-seed:     seed for the initial factor (default 1234)
//	-max-iter: optimizer iteration ceiling (default 300)
//	-eps:      convergence threshold on the squared change (default 1e-4)
//	-beta:     damping factor in (0, 1] (default 0.5)
//	-strict:   fail on zero degrees and zero update denominators
//	-v:        log stages, timings and optimizer progress to stderr
//
// Any failure prints "An Error Has Occurred" on stdout and exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/NirBendov/symnmf/affinity"
	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/matrixio"
	"github.com/NirBendov/symnmf/symnmf"
)

const genericError = "An Error Has Occurred"

var errUsage = errors.New("usage: symnmf [flags] <sym|ddg|norm|symnmf> <file>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("symnmf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		k       = fs.Int("k", 0, "number of clusters (symnmf goal)")
		seed    = fs.Uint64("seed", symnmf.DefaultSeed, "seed for the initial factor")
		maxIter = fs.Int("max-iter", symnmf.DefaultMaxIter, "optimizer iteration ceiling")
		eps     = fs.Float64("eps", symnmf.DefaultEpsilon, "convergence threshold")
		beta    = fs.Float64("beta", symnmf.DefaultBeta, "damping factor in (0, 1]")
		strict  = fs.Bool("strict", false, "fail on zero degrees and zero denominators")
		verbose = fs.Bool("v", false, "log progress to stderr")
	)

	logger := log.New(io.Discard, "symnmf: ", log.LstdFlags|log.Lmicroseconds)
	fail := func(err error) int {
		logger.Printf("error: %v", err)
		fmt.Fprintln(stdout, genericError)
		return 1
	}

	if err := fs.Parse(args); err != nil {
		return fail(err)
	}
	if *verbose {
		logger.SetOutput(stderr)
	}
	if fs.NArg() != 2 {
		return fail(errUsage)
	}
	goal, path := fs.Arg(0), fs.Arg(1)
	switch goal {
	case "sym", "ddg", "norm", "symnmf":
	default:
		return fail(fmt.Errorf("unknown goal %q: %w", goal, errUsage))
	}

	var opts []affinity.Option
	if *strict {
		opts = append(opts, affinity.WithStrictDegree())
	}

	start := time.Now()
	x, err := matrixio.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	logger.Printf("read %d×%d from %s in %v", x.Rows(), x.Cols(), path, time.Since(start))

	start = time.Now()
	var out *matrix.Dense
	switch goal {
	case "sym":
		out, err = affinity.Similarity(x)
	case "ddg":
		out, err = affinity.DDG(x)
	case "norm":
		out, err = affinity.Norm(x, opts...)
	case "symnmf":
		cfg := symnmf.DefaultConfig()
		cfg.MaxIter, cfg.Epsilon, cfg.Beta = *maxIter, *eps, *beta
		cfg.StrictDivision = *strict
		cfg.OnIteration = func(iter int, delta float64) {
			logger.Printf("iter %d: delta %.6g", iter, delta)
		}
		var f *symnmf.Factorization
		if f, err = symnmf.Factorize(x, *k, cfg, *seed, opts...); err == nil {
			out = f.H
			logger.Printf("iterations=%d delta=%.6g converged=%v", f.Result.Iterations, f.Result.Delta, f.Result.Converged)
		}
	}
	if err != nil {
		return fail(err)
	}
	logger.Printf("%s computed in %v", goal, time.Since(start))

	if err = matrixio.Write(stdout, out); err != nil {
		return fail(err)
	}

	return 0
}
