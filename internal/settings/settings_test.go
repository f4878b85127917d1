package settings

import (
	"log/slog"
	"testing"

	"github.com/mattjh/shoplist/internal/database"
	"github.com/mattjh/shoplist/internal/storage"
)

func setupBlobStore(t *testing.T) *storage.Store {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewStore(db)
}

func TestDefaults(t *testing.T) {
	svc := NewService(setupBlobStore(t), slog.Default())
	if got := svc.Language(); got != DefaultLanguage {
		t.Errorf("language = %q, want %q", got, DefaultLanguage)
	}
	if got := svc.Theme(); got != DefaultTheme {
		t.Errorf("theme = %q, want %q", got, DefaultTheme)
	}
}

func TestSetLanguage(t *testing.T) {
	svc := NewService(setupBlobStore(t), slog.Default())

	if !svc.SetLanguage("el") {
		t.Fatal("el should be accepted")
	}
	if got := svc.Language(); got != "el" {
		t.Errorf("language = %q, want el", got)
	}

	for _, bad := range []string{"", "fr", "EN"} {
		if svc.SetLanguage(bad) {
			t.Errorf("SetLanguage(%q) accepted, want rejected", bad)
		}
	}
	if got := svc.Language(); got != "el" {
		t.Errorf("rejected set changed language to %q", got)
	}
}

func TestSetTheme(t *testing.T) {
	svc := NewService(setupBlobStore(t), slog.Default())

	if !svc.SetTheme("dark") {
		t.Fatal("dark should be accepted")
	}
	if got := svc.Theme(); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
	if svc.SetTheme("midnight") {
		t.Error("unknown theme accepted")
	}
}

// Preferences flushed to the store come back on the next service start.
func TestPersistedAcrossRestarts(t *testing.T) {
	store := setupBlobStore(t)

	svc := NewService(store, slog.Default())
	svc.SetLanguage("es")
	svc.SetTheme("light")
	svc.Flush()

	reloaded := NewService(store, slog.Default())
	if got := reloaded.Language(); got != "es" {
		t.Errorf("reloaded language = %q, want es", got)
	}
	if got := reloaded.Theme(); got != "light" {
		t.Errorf("reloaded theme = %q, want light", got)
	}
}

// A stored value outside the supported set falls back to the default
// instead of propagating.
func TestInvalidStoredValueFallsBack(t *testing.T) {
	store := setupBlobStore(t)
	if err := store.Put(LanguageKey, "klingon"); err != nil {
		t.Fatalf("put: %v", err)
	}

	svc := NewService(store, slog.Default())
	if got := svc.Language(); got != DefaultLanguage {
		t.Errorf("language = %q, want default %q", got, DefaultLanguage)
	}
}

func TestSupportedSets(t *testing.T) {
	if got := len(Languages()); got != 3 {
		t.Errorf("expected 3 languages, got %d", got)
	}
	if got := len(Themes()); got != 3 {
		t.Errorf("expected 3 themes, got %d", got)
	}
	for _, l := range Languages() {
		if !ValidLanguage(l) {
			t.Errorf("Languages() includes invalid %q", l)
		}
	}
	for _, th := range Themes() {
		if !ValidTheme(th) {
			t.Errorf("Themes() includes invalid %q", th)
		}
	}
}
