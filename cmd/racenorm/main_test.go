package main

import (
	"strings"
	"testing"
)

const exampleReport = `==================
WARNING: DATA RACE
Read at 0x00c0001a0000 by goroutine 7:
  main.reader()
      /tmp/main.go:10

Previous write at 0x00c0001a0000 by goroutine 6:
  main.writer()
      /tmp/main.go:20

Goroutine 7 (running) created at:
  main.main()
      /tmp/main.go:5

Goroutine 6 (finished) created at:
  main.main()
      /tmp/main.go:4
==================
`

const exampleRecord = "Write at 0x00c0001a0000 by: main.writer() /tmp/main.go:20\t" +
	"Read at 0x00c0001a0000 by: main.reader() /tmp/main.go:10\t" +
	"Goroutine (finished) created at: main.main() /tmp/main.go:4\t" +
	"Goroutine (running) created at: main.main() /tmp/main.go:5\n"

// TestRun_UsageError tests that any argument is rejected before input is
// consumed: usage on stderr, exit code 1, nothing on stdout.
func TestRun_UsageError(t *testing.T) {
	for _, args := range [][]string{
		{"extra"},
		{"-h"},
		{"--version"},
		{"a", "b"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var stdout, stderr strings.Builder
			code := run(args, strings.NewReader(exampleReport), &stdout, &stderr)

			if code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			if !strings.Contains(stderr.String(), "expects no arguments") {
				t.Errorf("stderr = %q, want usage message", stderr.String())
			}
		})
	}
}

// TestRun_Pipeline tests the normal pipeline: detector output in,
// normalized records out, exit code 0.
func TestRun_Pipeline(t *testing.T) {
	input := "worker output\n" + exampleReport + exampleReport

	var stdout, stderr strings.Builder
	code := run(nil, strings.NewReader(input), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if got, want := stdout.String(), exampleRecord+exampleRecord; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

// TestRun_TruncatedBlock tests that input cut off mid-report exits 0 with
// the truncated block dropped.
func TestRun_TruncatedBlock(t *testing.T) {
	input := exampleReport + "==================\nWARNING: DATA RACE\nRead at 0x1 by goroutine 9:\n"

	var stdout, stderr strings.Builder
	code := run(nil, strings.NewReader(input), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("run() = %d, want 0 (stderr: %s)", code, stderr.String())
	}
	if got := stdout.String(); got != exampleRecord {
		t.Errorf("stdout = %q, want %q", got, exampleRecord)
	}
}

// TestRun_MalformedInput tests the fail-fast contract: a block that
// violates the grammar exits non-zero, with records for earlier blocks
// retained on stdout.
func TestRun_MalformedInput(t *testing.T) {
	input := exampleReport + "==================\nnot a race report\n==================\n"

	var stdout, stderr strings.Builder
	code := run(nil, strings.NewReader(input), &stdout, &stderr)

	if code == 0 {
		t.Fatal("run() = 0, want non-zero")
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("stderr = %q, want Error diagnostic", stderr.String())
	}
	if got := stdout.String(); got != exampleRecord {
		t.Errorf("stdout = %q, want first record only %q", got, exampleRecord)
	}
}
