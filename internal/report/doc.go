// Package report normalizes the textual race reports printed by the Go
// race detector into fixed four-field records.
//
// The race detector writes each report to stderr delimited by lines of
// '=' characters:
//
//	==================
//	WARNING: DATA RACE
//	Read at 0x00c0001a0000 by goroutine 7:
//	  main.reader()
//	      /tmp/main.go:10
//
//	Previous write at 0x00c0001a0000 by goroutine 6:
//	  main.writer()
//	      /tmp/main.go:20
//
//	Goroutine 7 (running) created at:
//	  main.main()
//	      /tmp/main.go:5
//
//	Goroutine 6 (finished) created at:
//	  main.main()
//	      /tmp/main.go:4
//	==================
//
// Report text is unstable across runs: the two accesses appear in
// detection order, and goroutine IDs depend on scheduling. That makes raw
// reports useless for diffing one run against another.
//
// # Normalization
//
// The package rewrites each report into one tab-separated record of four
// fields, with embedded newlines collapsed to single spaces:
//
//  1. The write access ("Write at 0x... by: <trace>"). If the report
//     listed the read first, the accesses are swapped.
//  2. The other access, with its "Previous " prefix removed and the
//     access word recapitalized.
//  3. The creation trace paired with field 1's goroutine.
//  4. The creation trace paired with field 2's goroutine.
//
// Goroutine IDs are stripped from all four fields ("by goroutine 7:"
// becomes "by:", "Goroutine 7 (running)" becomes "Goroutine (running)"),
// so two runs that race at the same locations produce identical records.
//
// # Usage
//
//	s := report.NewScanner(os.Stdout)
//	if err := s.Run(os.Stdin); err != nil {
//		// malformed report or write failure
//	}
//
// Scanning is a single pass: lines outside a report block are discarded,
// and a block still open at EOF is dropped without output. Any report
// that does not match the grammar above is a fatal error; the scanner
// assumes trusted detector output and never guesses.
package report
