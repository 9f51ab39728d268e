package main

import (
	"testing"
)

// TestMain_Imports verifies that main package compiles and imports work.
// main() delegates to cmd.Execute(), which calls os.Exit on failure and so
// isn't exercised directly here; cmd has its own tests.
func TestMain_Imports(t *testing.T) {
}
