package app_test

import (
	"testing"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/specialistvlad/autoperm/internal/diagram"
	"github.com/specialistvlad/autoperm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Diagram(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  app.Config
		want string
	}{
		{
			name: "tape",
			cfg:  app.Config{Diagram: "a b -- b a"},
			want: "[->+<]<[->+<]>>[-<<+>>]\n",
		},
		{
			name: "tape settled and verified",
			cfg:  app.Config{Diagram: "a b -- b a", Settle: true, Verify: true},
			want: "[->+<]<[->+<]>>[-<<+>>]<\n",
		},
		{
			name: "listing",
			cfg:  app.Config{Diagram: "a b c -- c", Backend: "listing"},
			want: "start 2\nclear 0\nclear 1\nmov 2 -> 0\ntop 0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := testutil.RunIntegrationTest(t, tc.cfg, nil, "")
			require.NoError(t, result.Err)
			assert.Equal(t, tc.want, result.Output)
			assert.Contains(t, result.LogOutput, "Diagram solved.")
		})
	}
}

func TestRun_DiagramError(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, app.Config{Diagram: "a a -- a"}, nil, "")
	var twice *diagram.DefinedTwiceError
	require.ErrorAs(t, result.Err, &twice)
	assert.Equal(t, "symbol a defined twice at 0 and 1", result.Err.Error())
	assert.Empty(t, result.Output)
}

func TestRun_BlankDiagramGiven(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, app.Config{Diagram: " ", DiagramGiven: true}, nil, "a b -- b a\n")
	require.ErrorIs(t, result.Err, diagram.ErrMissingSeparator)
	assert.Empty(t, result.Output)
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	t.Run("programs separated by blank lines", func(t *testing.T) {
		t.Parallel()
		stdin := "a b -- b a\n\n   \na -- a a\n"
		result := testutil.RunIntegrationTest(t, app.Config{Settle: true}, nil, stdin)
		require.NoError(t, result.Err)
		assert.Equal(t,
			"[->+<]<[->+<]>>[-<<+>>]<\n\n"+
				"[->>+<<]>>[-<+<+>>]<\n\n",
			result.Output)
	})

	t.Run("first error ends the session", func(t *testing.T) {
		t.Parallel()
		stdin := "a -- a\na b\na -- a\n"
		result := testutil.RunIntegrationTest(t, app.Config{}, nil, stdin)
		require.ErrorIs(t, result.Err, diagram.ErrMissingSeparator)
		assert.Equal(t, "\n\n", result.Output)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		result := testutil.RunIntegrationTest(t, app.Config{}, nil, "")
		require.NoError(t, result.Err)
		assert.Empty(t, result.Output)
	})
}

func TestRun_Words(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"stack.hcl": `
word "swap" {
  effect = "a b -- b a"
}

word "nip" {
  inputs  = ["a", "b"]
  outputs = ["b"]
}
`,
		"more/extra.yaml": `
words:
  - name: dup
    effect: a -- a a
`,
	}

	result := testutil.RunIntegrationTest(t, app.Config{Settle: true, Verify: true, WorkerCount: 2}, files, "")
	require.NoError(t, result.Err)

	testutil.AssertWordPrinted(t, result, "swap", "[->+<]<[->+<]>>[-<<+>>]<")
	testutil.AssertWordPrinted(t, result, "nip", "<[-]>[-<+>]<")
	testutil.AssertWordPrinted(t, result, "dup", "[->>+<<]>>[-<+<+>>]<")
	assert.Len(t, result.App.Words().Words, 3)
	assert.Contains(t, result.LogOutput, "Word library compiled.")
}

func TestRun_WordErrors(t *testing.T) {
	t.Parallel()

	t.Run("bad diagram names the word", func(t *testing.T) {
		t.Parallel()
		files := map[string]string{"w.hcl": `word "bad" { effect = "a -- b" }`}
		result := testutil.RunIntegrationTest(t, app.Config{}, files, "")
		require.Error(t, result.Err)
		assert.Equal(t, `word "bad": symbol b not defined at 0`, result.Err.Error())
	})

	t.Run("load failure", func(t *testing.T) {
		t.Parallel()
		files := map[string]string{"w.hcl": `word "bad" {`}
		result := testutil.RunIntegrationTest(t, app.Config{}, files, "")
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), "failed to load words")
		assert.Nil(t, result.App)
	})

	t.Run("no words found", func(t *testing.T) {
		t.Parallel()
		files := map[string]string{"readme.txt": "nothing here"}
		result := testutil.RunIntegrationTest(t, app.Config{}, files, "")
		require.NoError(t, result.Err)
		assert.Empty(t, result.Output)
		assert.Contains(t, result.LogOutput, "No words found")
	})
}

func TestNewApp_Backends(t *testing.T) {
	t.Parallel()

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()
		result := testutil.RunIntegrationTest(t, app.Config{Diagram: "a --", Backend: "nope"}, nil, "")
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), `unknown backend "nope" (available: [listing tape])`)
	})

	t.Run("verification needs an executable backend", func(t *testing.T) {
		t.Parallel()
		result := testutil.RunIntegrationTest(t, app.Config{Diagram: "a --", Backend: "listing", Verify: true}, nil, "")
		require.Error(t, result.Err)
		assert.Contains(t, result.Err.Error(), `output of backend "listing" cannot be verified`)
	})

	t.Run("custom modules replace the core set", func(t *testing.T) {
		t.Parallel()
		result := testutil.RunIntegrationTest(t, app.Config{Diagram: "a b -- b a", Backend: "noop"}, nil, "", &testutil.NoOpModule{})
		require.NoError(t, result.Err)
		assert.Equal(t, "\n", result.Output)
		assert.Equal(t, []string{"noop"}, result.App.Registry().Names())
	})
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{})
	require.NoError(t, err)
	assert.Equal(t, app.DefaultBackend, cfg.Backend)

	_, err = app.NewConfig(app.Config{Diagram: "a --", WordPaths: []string{"."}})
	require.Error(t, err)

	_, err = app.NewConfig(app.Config{DiagramGiven: true, WordPaths: []string{"."}})
	require.Error(t, err)

	_, err = app.NewConfig(app.Config{WorkerCount: -1})
	require.Error(t, err)
}
