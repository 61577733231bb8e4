package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertWordPrinted checks that the output of a word library run contains
// the line for name with the given program.
func AssertWordPrinted(t *testing.T, result *HarnessResult, name, program string) {
	t.Helper()

	want := name + ": " + program
	for _, line := range strings.Split(result.Output, "\n") {
		if line == want {
			return
		}
	}
	require.Failf(t, "word not printed", "expected line %q in output:\n%s", want, result.Output)
}
