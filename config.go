package transit

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// DefaultMaxLayoutWaitFrames bounds how many frames a viewport-relative
// translation waits for the first layout before resolving against a zero
// viewport.
const DefaultMaxLayoutWaitFrames = 30

// Config configures a TransitionManager. The zero value is usable; missing
// pieces fall back to the defaults described on each field.
type Config struct {
	// MaxLayoutWaitFrames bounds the wait for an unavailable viewport.
	// Zero means DefaultMaxLayoutWaitFrames; negative means do not wait.
	MaxLayoutWaitFrames int `yaml:"maxLayoutWaitFrames"`

	// Motion seeds an in-memory settings store when Settings is nil. Nil
	// means DefaultMotionSettings.
	Motion *MotionSettings `yaml:"motion"`

	// Presets are registered when the manager is created.
	Presets map[string]TransitionOptions `yaml:"presets"`

	// Viewport supplies geometry for viewport-relative translations. Nil
	// means the viewport is never available.
	Viewport ViewportProvider `yaml:"-"`

	// Settings provides persisted motion settings and overrides Motion.
	Settings *SettingsStore `yaml:"-"`

	// Logger receives warnings. Nil means stderr with a "[transit] " prefix.
	Logger *log.Logger `yaml:"-"`

	// Sink receives every event after subscribers.
	Sink EventSink `yaml:"-"`
}

// DefaultConfig returns a Config with default motion settings.
func DefaultConfig() Config {
	motion := DefaultMotionSettings()
	return Config{
		MaxLayoutWaitFrames: DefaultMaxLayoutWaitFrames,
		Motion:              &motion,
	}
}

// LoadConfig parses a YAML configuration:
//
//	maxLayoutWaitFrames: 10
//	motion:
//	  animationsEnabled: true
//	  durationScale: 1
//	presets:
//	  fadeIn: {kind: Fade, fadeFrom: 0, fadeTo: 1, duration: 0.3}
//
// Runtime collaborators (Viewport, Settings, Logger, Sink) are left nil for
// the caller to fill in.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	for _, name := range sortedKeys(cfg.Presets) {
		if err := cfg.Presets[name].Validate(); err != nil {
			return Config{}, fmt.Errorf("parse config: preset %q: %w", name, err)
		}
	}
	return cfg, nil
}

func (c Config) motion() MotionSettings {
	if c.Motion == nil {
		return DefaultMotionSettings()
	}
	return *c.Motion
}

func (c Config) layoutWaitFrames() int {
	switch {
	case c.MaxLayoutWaitFrames == 0:
		return DefaultMaxLayoutWaitFrames
	case c.MaxLayoutWaitFrames < 0:
		return 0
	}
	return c.MaxLayoutWaitFrames
}
