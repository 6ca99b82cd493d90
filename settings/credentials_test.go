package settings

import (
	"os"
	"path/filepath"
	"testing"
)

// useTempStore points the credential store at a temp directory.
func useTempStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	return dir
}

func TestLoad_MissingFileReturnsEmptyStore(t *testing.T) {
	useTempStore(t)
	store := Load()
	if len(store) != 0 {
		t.Errorf("expected empty store, got %d entries", len(store))
	}
}

func TestSetAndLoad(t *testing.T) {
	useTempStore(t)
	if err := Set("google", &Info{Key: "secret"}); err != nil {
		t.Fatal(err)
	}

	store := Load()
	if info := store["google"]; info == nil || info.Key != "secret" {
		t.Errorf("store[google] = %+v", info)
	}
}

func TestSave_Permissions(t *testing.T) {
	dir := useTempStore(t)
	if err := Set("deepl", &Info{Key: "k"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, dataDirName, fileName))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("auth.json permissions = %o, want 0600", perm)
	}
}

func TestRemove(t *testing.T) {
	useTempStore(t)
	if err := Set("google", &Info{Key: "k"}); err != nil {
		t.Fatal(err)
	}
	if err := Remove("google"); err != nil {
		t.Fatal(err)
	}
	if Load()["google"] != nil {
		t.Error("entry still present after Remove")
	}
}

func TestAPIKey_LookupOrder(t *testing.T) {
	useTempStore(t)
	if err := Set("google", &Info{Key: "from-store"}); err != nil {
		t.Fatal(err)
	}

	if got := APIKey("from-flag", "google"); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}

	t.Setenv(EnvAPIKey, "from-env")
	if got := APIKey("", "google"); got != "from-env" {
		t.Errorf("env should win over store, got %q", got)
	}

	t.Setenv(EnvAPIKey, "")
	if got := APIKey("", "google"); got != "from-store" {
		t.Errorf("store fallback, got %q", got)
	}
}
