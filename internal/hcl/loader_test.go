package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func load(t *testing.T, files map[string]string) (*config.Model, error) {
	t.Helper()
	return NewLoader().Load(context.Background(), writeFiles(t, files))
}

func TestLoader_Load(t *testing.T) {
	model, err := load(t, map[string]string{
		"words.hcl": `
word "swap" {
  description = "exchange the top two items"
  effect      = "a b -- b a"
}

word "rot" {
  inputs  = "a b c"
  outputs = ["b", "c", "a"]
}

word "reverse3" {
  inputs  = split(" ", "a b c")
  outputs = reverse(split(" ", "a b c"))
}

word "over" {
  inputs  = ["a", "b"]
  outputs = concat(["a", "b"], split(" ", "a"))
}

word "drop" {
  inputs = ["a"]
}
`,
		"notes.txt": "not a word file",
	})
	require.NoError(t, err)
	require.Len(t, model.Words, 5)

	testCases := []struct {
		name     string
		notation string
	}{
		{"swap", "a b -- b a"},
		{"rot", "a b c -- b c a"},
		{"reverse3", "a b c -- c b a"},
		{"over", "a b -- a b a"},
		{"drop", "a --"},
	}
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := model.Words[i]
			assert.Equal(t, tc.name, w.Name)
			assert.Equal(t, tc.notation, w.Notation())
			assert.Equal(t, "words.hcl", filepath.Base(w.Source))
		})
	}

	assert.Equal(t, "exchange the top two items", model.Words[0].Description)
	assert.Nil(t, model.Words[4].Outputs)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `word "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			content: `word "x" { colour = "red" }`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "effect and symbols",
			content: `
word "x" {
  effect = "a --"
  inputs = ["a"]
}
`,
			wantErr: `word "x": effect cannot be combined with inputs or outputs`,
		},
		{
			name:    "not a list of strings",
			content: `word "x" { inputs = [["a"]] }`,
			wantErr: `word "x", inputs: cannot convert`,
		},
		{
			name:    "unknown function",
			content: `word "x" { outputs = upper("a") }`,
			wantErr: `word "x", outputs`,
		},
		{
			name:    "misspelled block",
			content: `wrod "swap" { effect = "a b -- b a" }`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "stray top-level attribute",
			content: `effect = "a b -- b a"`,
			wantErr: "failed to decode HCL file",
		},
		{
			name: "symbol with whitespace",
			content: `
word "keep" {
  inputs  = ["a b", "c"]
  outputs = ["c"]
}
`,
			wantErr: `word "keep", inputs: symbol "a b" at 0 contains whitespace`,
		},
		{
			name: "separator inside a symbol list",
			content: `
word "x" {
  inputs  = ["a"]
  outputs = "a -- a"
}
`,
			wantErr: `word "x", outputs: symbol "--" at 1 contains --`,
		},
		{
			name: "empty symbol",
			content: `
word "x" {
  inputs = ["a", ""]
}
`,
			wantErr: `word "x", inputs: symbol 1 is empty`,
		},
		{
			name: "duplicate word",
			content: `
word "x" { effect = "a --" }
word "x" { effect = "a -- a" }
`,
			wantErr: `word "x" declared in`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, map[string]string{"bad.hcl": tc.content})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, model.Words)
}

func TestLoader_SeveralFiles(t *testing.T) {
	model, err := load(t, map[string]string{
		"a.hcl":        `word "dup" { effect = "a -- a a" }`,
		"nested/b.hcl": `word "nip" { effect = "a b -- b" }`,
	})
	require.NoError(t, err)

	_, ok := model.Lookup("dup")
	assert.True(t, ok)
	nip, ok := model.Lookup("nip")
	require.True(t, ok)
	assert.Equal(t, "b.hcl", filepath.Base(nip.Source))
}
