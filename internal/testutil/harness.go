package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/specialistvlad/autoperm/internal/config"
	"github.com/specialistvlad/autoperm/internal/hcl"
	"github.com/specialistvlad/autoperm/internal/registry"
	"github.com/specialistvlad/autoperm/internal/yaml"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Loader returns the loader the CLI uses: HCL then YAML.
func Loader() config.Loader {
	return config.Chain(hcl.NewLoader(), yaml.NewLoader())
}

// WriteFiles writes files, keyed by relative path, under a fresh temporary
// directory and returns it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// RunIntegrationTest builds an App from cfg and runs it with stdin as
// input. When files is not empty they are written to a temporary directory
// that becomes the word path. Logs are captured at debug level.
func RunIntegrationTest(t *testing.T, cfg app.Config, files map[string]string, stdin string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, cfg, files, stdin, modules...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller
// supplied context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, cfg app.Config, files map[string]string, stdin string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		cfg.WordPaths = []string{WriteFiles(t, files)}
	}
	cfg.LogLevel = "debug"

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("AUTOPERM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	result := &HarnessResult{}
	result.App, result.Err = app.NewApp(out, logs, appConfig, Loader(), modules...)
	if result.Err == nil {
		result.Err = result.App.Run(ctx, strings.NewReader(stdin))
	}
	result.Output = out.String()
	result.LogOutput = logs.String()
	return result
}
