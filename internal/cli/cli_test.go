package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "defaults",
			args: nil,
			want: app.Config{Backend: "tape", WorkerCount: 4, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "diagram words are joined",
			args: []string{"a", "b", "--", "b", "a"},
			want: app.Config{Diagram: "a b -- b a", DiagramGiven: true, Backend: "tape", WorkerCount: 4, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "all flags",
			args: []string{"-backend", "LISTING", "-settle", "-verify", "-workers", "8", "-log-format", "JSON", "-log-level", "debug", "a -- a a"},
			want: app.Config{Diagram: "a -- a a", DiagramGiven: true, Backend: "listing", Settle: true, Verify: true, WorkerCount: 8, LogFormat: "json", LogLevel: "debug"},
		},
		{
			name: "blank diagram argument",
			args: []string{"  "},
			want: app.Config{Diagram: "  ", DiagramGiven: true, Backend: "tape", WorkerCount: 4, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "word paths",
			args: []string{"-words", "stack.hcl, lib/ ,,extra.yaml"},
			want: app.Config{WordPaths: []string{"stack.hcl", "lib/", "extra.yaml"}, Backend: "tape", WorkerCount: 4, LogFormat: "text", LogLevel: "warn"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-backend")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"workers", []string{"-workers", "0"}, "invalid workers"},
		{"diagram and words", []string{"-words", "lib", "a", "--"}, "cannot be used together"},
		{"blank diagram and words", []string{"-words", "lib", ""}, "cannot be used together"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
