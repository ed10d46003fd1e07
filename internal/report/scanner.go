package report

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// raceWarning is the banner line inside every report block. It carries no
// field content and is skipped during accumulation.
const raceWarning = "WARNING: DATA RACE"

// boundaryRE matches a block boundary: a line of one or more '='
// characters and nothing else.
var boundaryRE = regexp.MustCompile(`^=+$`)

// Scanner groups race detector output lines into report blocks and writes
// one normalized record per completed block.
//
// It is a two-state machine: outside a block every non-boundary line is
// discarded; inside a block, blank lines separate fields and consecutive
// non-blank lines are space-joined into the current field. A Scanner holds
// all scan state itself and processes lines strictly in input order, never
// looking ahead or back.
type Scanner struct {
	out    io.Writer
	inside bool     // currently between boundary lines
	field  string   // accumulator for the field being built
	fields []string // completed fields of the current block
}

// NewScanner returns a Scanner that writes normalized records to out.
func NewScanner(out io.Writer) *Scanner {
	return &Scanner{out: out}
}

// Line processes one raw input line and advances the state machine.
// Surrounding whitespace is stripped before classification. A boundary
// line that closes a block triggers normalization and emission of that
// block's record; the returned error is either ErrMalformed (wrapped)
// from normalization or a write error from the output stream.
func (s *Scanner) Line(line string) error {
	line = strings.TrimSpace(line)

	if !s.inside {
		if boundaryRE.MatchString(line) {
			s.fields = s.fields[:0]
			s.field = ""
			s.inside = true
		}
		return nil
	}

	switch {
	case boundaryRE.MatchString(line):
		// The accumulator is flushed even when empty: the grammar has no
		// blank line before the closing boundary, so the last field is
		// still pending here.
		s.fields = append(s.fields, s.field)
		s.field = ""
		s.inside = false
		return s.emit()
	case line == raceWarning:
		// Banner, not field content.
	case line == "":
		s.fields = append(s.fields, s.field)
		s.field = ""
	default:
		if s.field != "" {
			s.field += " "
		}
		s.field += line
	}
	return nil
}

// emit normalizes the completed block and writes its record, one line of
// tab-separated fields, to the output stream. Records are written per
// block, not batched.
func (s *Scanner) emit() error {
	fields, err := Normalize(s.fields)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, strings.Join(fields, "\t")+"\n")
	return err
}

// Run feeds r through the scanner line by line until EOF. A block still
// open at EOF is dropped silently: the producing program may have been
// killed mid-report, and a truncated tail is expected in the
// "prog 2>&1 | racenorm" pipeline this tool is built for. Malformed
// completed blocks and output write failures abort the run.
func (s *Scanner) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := s.Line(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
