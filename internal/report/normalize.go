package report

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// NumFields is the number of logical fields in one race report: the two
// conflicting accesses and the two goroutine creation traces.
const NumFields = 4

// ErrMalformed is returned when a report block does not match the race
// detector's output grammar. It is fatal: the input contract is violated
// and continuing would emit records that corrupt downstream comparison.
var ErrMalformed = errors.New("malformed race report")

// previousPrefix is the prefix carried by the second access description.
// The access word after it is lowercase ("read"/"write").
const previousPrefix = "Previous "

var (
	previousAccessRE = regexp.MustCompile(`^Previous [rw]`)
	readAccessRE     = regexp.MustCompile(`^Read `)
	writeAccessRE    = regexp.MustCompile(`^Write `)

	// Goroutine IDs are scheduling-dependent, so they are stripped for
	// run-to-run comparability.
	byGoroutineIDRE = regexp.MustCompile(`\b(by) goroutine [0-9]+(:)`)
	goroutineIDRE   = regexp.MustCompile(`^(Goroutine) [0-9]+( )`)
)

// Normalize canonicalizes the four fields of one report block:
//
//  1. Strip field 1's "Previous " prefix and recapitalize the access word.
//  2. Swap the accesses (and their paired creation traces) so the write
//     comes first.
//  3. Strip goroutine IDs from all four fields.
//
// The input slice is not modified; the canonical fields are returned as a
// new slice. Returns ErrMalformed (wrapped) if the field count is not
// NumFields, field 1 does not start with "Previous r"/"Previous w", or
// the first field after reordering does not describe a write.
func Normalize(fields []string) ([]string, error) {
	if len(fields) != NumFields {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMalformed, len(fields), NumFields)
	}

	f := make([]string, NumFields)
	copy(f, fields)

	if !previousAccessRE.MatchString(f[1]) {
		return nil, fmt.Errorf("%w: second access %q does not start with %q",
			ErrMalformed, f[1], previousPrefix+"read/write")
	}
	f[1] = f[1][len(previousPrefix):]
	f[1] = strings.ToUpper(f[1][:1]) + f[1][1:]

	// The write goes first. Swapping the accesses swaps the creation
	// traces too, keeping each access paired with its goroutine's trace.
	if readAccessRE.MatchString(f[0]) {
		f[0], f[1] = f[1], f[0]
		f[2], f[3] = f[3], f[2]
	}
	if !writeAccessRE.MatchString(f[0]) {
		return nil, fmt.Errorf("%w: first access %q is neither read nor write", ErrMalformed, f[0])
	}

	f[0] = byGoroutineIDRE.ReplaceAllString(f[0], "${1}${2}")
	f[1] = byGoroutineIDRE.ReplaceAllString(f[1], "${1}${2}")
	f[2] = goroutineIDRE.ReplaceAllString(f[2], "${1}${2}")
	f[3] = goroutineIDRE.ReplaceAllString(f[3], "${1}${2}")

	return f, nil
}
