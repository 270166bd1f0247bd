// ABOUTME: Tests for the main rtti package, verifying version and fixture setup
// ABOUTME: Registers the shared fixture hierarchy for every external test

package rtti_test

import (
	"os"
	"testing"

	"github.com/prateek/rtti"
	"github.com/prateek/rtti/rttitest"
)

func TestMain(m *testing.M) {
	rttitest.MustRegister()
	os.Exit(m.Run())
}

func TestVersion(t *testing.T) {
	if rtti.Version == "" {
		t.Error("Version constant should not be empty")
	}

	// Semantic versioning, pre-1.0
	expectedPrefix := "0."
	if len(rtti.Version) < len(expectedPrefix) || rtti.Version[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Version should start with %q, got %q", expectedPrefix, rtti.Version)
	}
}

func TestFixtureRegistered(t *testing.T) {
	if err := rttitest.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if n := rtti.DefaultRegistry.Len(); n < 65 {
		t.Errorf("DefaultRegistry.Len() = %d, want at least 65", n)
	}
}
