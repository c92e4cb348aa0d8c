// Command analysis compares SymNMF and k-means clusterings of a point set by
// their silhouette scores.
//
// Usage:
//
//	analysis [-seed S] [-v] <k> <file>
//
// Output:
//
//	nmf: 0.1234
//	kmeans: 0.5678
//
// A score that is undefined (every point in one cluster) prints as N/A.
// Any failure prints "An Error Has Occurred" on stdout and exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/NirBendov/symnmf/analysis"
	"github.com/NirBendov/symnmf/matrixio"
	"github.com/NirBendov/symnmf/symnmf"
)

const genericError = "An Error Has Occurred"

var errUsage = errors.New("usage: analysis [flags] <k> <file>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analysis", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Uint64("seed", symnmf.DefaultSeed, "seed for the SymNMF initial factor")
	verbose := fs.Bool("v", false, "log progress to stderr")

	logger := log.New(io.Discard, "analysis: ", log.LstdFlags)
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
	k, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("k: %w", err))
	}

	x, err := matrixio.ReadFile(fs.Arg(1))
	if err != nil {
		return fail(err)
	}
	logger.Printf("read %d points of dimension %d", x.Rows(), x.Cols())

	r, err := analysis.Compare(x, k, symnmf.DefaultConfig(), *seed)
	if err != nil {
		return fail(err)
	}

	fmt.Fprintf(stdout, "nmf: %s\n", formatScore(r.SymNMF))
	fmt.Fprintf(stdout, "kmeans: %s\n", formatScore(r.KMeans))

	return 0
}

func formatScore(s float64) string {
	if math.IsNaN(s) {
		return "N/A"
	}

	return strconv.FormatFloat(s, 'f', 4, 64)
}
