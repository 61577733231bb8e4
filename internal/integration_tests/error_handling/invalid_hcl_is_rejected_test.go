package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/specialistvlad/autoperm/internal/testutil"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	// --- Arrange ---
	invalidHCL := `
		word "swap" {
			effect = "a b -- b a"
		// Missing closing brace here
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, app.Config{}, map[string]string{"main.hcl": invalidHCL}, "")

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("run should have returned an error for invalid HCL, but it returned nil")
	}
	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, "failed to parse") && !strings.Contains(errMsg, "failed to decode") {
		t.Errorf("expected error message to indicate an HCL parsing failure, but got: %s", errMsg)
	}
	if result.Output != "" {
		t.Errorf("expected no program output, got: %q", result.Output)
	}
}
