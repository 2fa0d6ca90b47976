package models

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player's remembered preferences.
// Race results are never stored.
type Settings struct {
	Host  string `yaml:"host"`  // Preferred host, empty for the config default
	Glyph string `yaml:"glyph"` // Preferred car character, empty for the config default
}

// Apply copies the non-empty preferences onto cfg
func (s Settings) Apply(cfg *Config) {
	if s.Host != "" {
		cfg.Host = s.Host
	}
	if s.Glyph != "" {
		cfg.Glyph = s.Glyph
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// SettingsStore loads and saves Settings through gdata.
// With a nil manager it keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettingsStore opens the gdata storage for appName.
// If the storage cannot be opened an in-memory store is returned with the error.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewSettingsStore(manager), nil
}

// NewSettingsStore creates a store over manager and loads any saved settings
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{manager: manager}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return s
}

// Load reads saved settings, leaving empty settings when nothing is saved
func (s *SettingsStore) Load() error {
	s.settings = Settings{}
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.settings = loaded
	return nil
}

// Save writes the current settings; it is a no-op without a manager
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[Settings] Saved host=%q glyph=%q", s.settings.Host, s.settings.Glyph)
	return nil
}

// Settings returns the current preferences
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// Update replaces the current preferences without saving them
func (s *SettingsStore) Update(settings Settings) {
	s.settings = settings
}
