package config

import "testing"

// TestGetAPITokenEnvOverride verifies the env var wins over any stored value.
func TestGetAPITokenEnvOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("ARTISTY_ADMIN_TOKEN", "env-token")

	tok, err := GetAPIToken()
	if err != nil {
		t.Fatalf("GetAPIToken: %v", err)
	}
	if tok != "env-token" {
		t.Errorf("token = %q, want %q", tok, "env-token")
	}
}

// TestGetAPITokenGeneratesAndPersists verifies first use generates a token
// and subsequent calls return the same one.
func TestGetAPITokenGeneratesAndPersists(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("ARTISTY_ADMIN_TOKEN", "")

	first, err := GetAPIToken()
	if err != nil {
		t.Fatalf("GetAPIToken: %v", err)
	}
	if first == "" {
		t.Fatal("generated token is empty")
	}

	second, err := GetAPIToken()
	if err != nil {
		t.Fatalf("GetAPIToken: %v", err)
	}
	if second != first {
		t.Errorf("token changed across calls: %q != %q", second, first)
	}
}
