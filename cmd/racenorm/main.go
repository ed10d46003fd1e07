// Package main implements the racenorm CLI tool.
//
// racenorm rewrites the race reports that Go's race detector prints to
// stderr into one tab-separated record per report, so that detector
// output can be compared across runs. Access order and goroutine IDs vary
// from run to run; after normalization, two runs racing at the same
// locations produce byte-identical records.
//
// Usage:
//
//	program_under_test 2>&1 1>/dev/null | racenorm
//
// The tool takes no arguments. It reads detector output on stdin, writes
// one record per report to stdout, and exits non-zero if a report does
// not match the detector's output grammar. Text outside report blocks is
// discarded, so the program's own stderr output may be left interleaved
// with the reports.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kolkov/racenorm/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the testable body of main: it scans stdin and returns the
// process exit code. Any argument is a usage error, reported before any
// input is consumed.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintf(stderr, "%s: expects no arguments\n", filepath.Base(os.Args[0]))
		return 1
	}

	if err := report.NewScanner(stdout).Run(stdin); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
