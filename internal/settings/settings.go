// Package settings holds the device preferences: active theme name and
// active language code. Each preference has its own blob key and its
// own debounce window, independent of the list pipeline.
package settings

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mattjh/shoplist/internal/persist"
	"github.com/mattjh/shoplist/internal/storage"
)

const (
	LanguageKey = "APP_LANGUAGE_V1"
	ThemeKey    = "APP_THEME_V1"

	// Preference writes settle fast; these are single small values.
	saveWindow = 100 * time.Millisecond

	DefaultLanguage = "en"
	DefaultTheme    = "system"
)

var languages = map[string]bool{
	"en": true,
	"es": true,
	"el": true,
}

var themes = map[string]bool{
	"system": true,
	"light":  true,
	"dark":   true,
}

// Languages returns the supported language codes.
func Languages() []string { return []string{"en", "es", "el"} }

// Themes returns the supported theme names.
func Themes() []string { return []string{"system", "light", "dark"} }

// ValidLanguage reports whether code is a supported language.
func ValidLanguage(code string) bool { return languages[code] }

// ValidTheme reports whether name is a supported theme.
func ValidTheme(name string) bool { return themes[name] }

// Service keeps the current preferences in memory and writes them
// through the blob store on a per-key debounce. Like the list
// pipeline, save failures are logged, never surfaced.
type Service struct {
	store  *storage.Store
	logger *slog.Logger

	mu       sync.Mutex
	language string
	theme    string

	langSave  *persist.Debouncer
	themeSave *persist.Debouncer
}

// NewService loads both preferences once. A stored value that is
// missing, unreadable, or out of range falls back to the default.
func NewService(store *storage.Store, logger *slog.Logger) *Service {
	s := &Service{
		store:    store,
		logger:   logger,
		language: DefaultLanguage,
		theme:    DefaultTheme,
	}
	s.langSave = persist.NewDebouncer(saveWindow, func() { s.save(LanguageKey, s.Language()) })
	s.themeSave = persist.NewDebouncer(saveWindow, func() { s.save(ThemeKey, s.Theme()) })

	var lang string
	if ok, err := store.Get(LanguageKey, &lang); err != nil {
		logger.Warn("failed to load language", "error", err)
	} else if ok && ValidLanguage(lang) {
		s.language = lang
	}

	var theme string
	if ok, err := store.Get(ThemeKey, &theme); err != nil {
		logger.Warn("failed to load theme", "error", err)
	} else if ok && ValidTheme(theme) {
		s.theme = theme
	}

	return s
}

func (s *Service) save(key, value string) {
	if err := s.store.Put(key, value); err != nil {
		s.logger.Warn("failed to save preference", "key", key, "error", err)
	}
}

// Language returns the active language code.
func (s *Service) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage updates the active language and schedules a save.
func (s *Service) SetLanguage(code string) bool {
	if !ValidLanguage(code) {
		return false
	}
	s.mu.Lock()
	s.language = code
	s.mu.Unlock()
	s.langSave.Trigger()
	return true
}

// Theme returns the active theme name.
func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme updates the active theme and schedules a save.
func (s *Service) SetTheme(name string) bool {
	if !ValidTheme(name) {
		return false
	}
	s.mu.Lock()
	s.theme = name
	s.mu.Unlock()
	s.themeSave.Trigger()
	return true
}

// Flush writes any pending preference saves immediately.
func (s *Service) Flush() {
	s.langSave.Flush()
	s.themeSave.Flush()
}
