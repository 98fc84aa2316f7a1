package transit

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MotionSettings are the user-facing animation preferences.
type MotionSettings struct {
	// AnimationsEnabled turns transitions on. When false every transition
	// snaps to its end state and notifies started and completed at once.
	AnimationsEnabled bool `yaml:"animationsEnabled"`
	// DurationScale multiplies every transition duration. 0.5 plays
	// transitions twice as fast. Non-positive values are treated as 1.
	DurationScale float64 `yaml:"durationScale"`
}

// DefaultMotionSettings returns animations on at normal speed.
func DefaultMotionSettings() MotionSettings {
	return MotionSettings{
		AnimationsEnabled: true,
		DurationScale:     1,
	}
}

// scale applies DurationScale to d.
func (s MotionSettings) scale(d float64) float64 {
	if !(s.DurationScale > 0) || !finite(s.DurationScale) {
		return d
	}
	return d * s.DurationScale
}

// Storage keys for gdata.
const (
	settingsObject   = "transit"
	settingsProperty = "motion"
)

// SettingsStore loads and saves MotionSettings through gdata. A store without
// a gdata manager keeps settings in memory only.
type SettingsStore struct {
	data     *gdata.Manager
	settings MotionSettings
}

// NewSettingsStore creates a store over data (which may be nil) and loads any
// saved settings. A load failure is logged and the defaults are kept; the
// store is still usable.
func NewSettingsStore(data *gdata.Manager) *SettingsStore {
	s := &SettingsStore{data: data, settings: DefaultMotionSettings()}
	if err := s.Load(); err != nil {
		defaultLogger.Printf("failed to load motion settings: %v (using defaults)", err)
	}
	return s
}

// OpenSettingsStore opens the platform data directory for appName and
// returns a store backed by it.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewSettingsStore(m), nil
}

// newMemorySettings creates an unpersisted store holding s.
func newMemorySettings(s MotionSettings) *SettingsStore {
	return &SettingsStore{settings: s}
}

// Load replaces the current settings with the saved ones. Missing data keeps
// the defaults and is not an error.
func (s *SettingsStore) Load() error {
	if s.data == nil {
		return nil
	}
	if !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultMotionSettings()
		return nil
	}
	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load motion settings: %w", err)
	}
	loaded := DefaultMotionSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("unmarshal motion settings: %w", err)
	}
	s.settings = loaded
	return nil
}

// Save writes the current settings. Memory-only stores succeed without
// writing anything.
func (s *SettingsStore) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal motion settings: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("save motion settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() MotionSettings {
	return s.settings
}

// Persistent reports whether the store writes to disk.
func (s *SettingsStore) Persistent() bool {
	return s.data != nil
}

// SetAnimationsEnabled changes the in-memory setting; call Save to persist it.
func (s *SettingsStore) SetAnimationsEnabled(enabled bool) {
	s.settings.AnimationsEnabled = enabled
}

// SetDurationScale changes the in-memory setting; call Save to persist it.
func (s *SettingsStore) SetDurationScale(scale float64) {
	s.settings.DurationScale = scale
}
