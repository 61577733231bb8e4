package integration_tests

import (
	"testing"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/specialistvlad/autoperm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: symbol lists built with functions
func TestHclFeatures_SymbolFunctions(t *testing.T) {
	t.Parallel()

	hcl := `
word "reverse4" {
  description = "reverse the top four items"
  inputs      = split(" ", "a b c d")
  outputs     = reverse(split(" ", "a b c d"))
}

word "2swap" {
  inputs  = ["a", "b", "c", "d"]
  outputs = concat(["c", "d"], ["a", "b"])
}

word "spaced" {
  inputs  = "x   y"
  outputs = "y x y"
}
`

	result := testutil.RunIntegrationTest(t, app.Config{Verify: true}, map[string]string{"lib.hcl": hcl}, "")
	require.NoError(t, result.Err)

	words := result.App.Words()
	notations := map[string]string{}
	for _, w := range words.Words {
		notations[w.Name] = w.Notation()
	}
	assert.Equal(t, map[string]string{
		"reverse4": "a b c d -- d c b a",
		"2swap":    "a b c d -- c d a b",
		"spaced":   "x y -- y x y",
	}, notations)

	reverse4, ok := words.Lookup("reverse4")
	require.True(t, ok)
	assert.Equal(t, "reverse the top four items", reverse4.Description)
}
