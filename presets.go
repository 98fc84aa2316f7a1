package transit

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// PresetRegistry maps preset names to transition options.
type PresetRegistry struct {
	presets map[string]TransitionOptions
}

// NewPresetRegistry creates an empty registry.
func NewPresetRegistry() *PresetRegistry {
	return &PresetRegistry{presets: make(map[string]TransitionOptions)}
}

// Register merges presets into the registry. Entries with an existing name
// replace the old options.
func (r *PresetRegistry) Register(presets map[string]TransitionOptions) {
	for name, opts := range presets {
		r.presets[name] = opts
	}
}

// Lookup returns the options registered under name.
func (r *PresetRegistry) Lookup(name string) (TransitionOptions, bool) {
	opts, ok := r.presets[name]
	return opts, ok
}

// Names returns the registered preset names in sorted order.
func (r *PresetRegistry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered presets.
func (r *PresetRegistry) Len() int {
	return len(r.presets)
}

// presetFile is the document layout accepted by ParsePresets.
type presetFile struct {
	Presets map[string]TransitionOptions `yaml:"presets"`
}

// ParsePresets decodes a YAML (or JSON) document of the form
//
//	presets:
//	  slideIn:
//	    kind: Translation
//	    origin: FromLeft
//	    easing: EaseOutCubic
//	    duration: 0.4
//
// Omitted keys take their DefaultTransitionOptions values. Every preset is
// validated; the first invalid one fails the whole document.
func ParsePresets(data []byte) (map[string]TransitionOptions, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("parse presets: no presets")
	}
	for _, name := range sortedKeys(f.Presets) {
		if err := f.Presets[name].Validate(); err != nil {
			return nil, fmt.Errorf("parse presets: %q: %w", name, err)
		}
	}
	return f.Presets, nil
}

// MarshalPresets encodes presets in the format ParsePresets reads.
func MarshalPresets(presets map[string]TransitionOptions) ([]byte, error) {
	data, err := yaml.Marshal(presetFile{Presets: presets})
	if err != nil {
		return nil, fmt.Errorf("marshal presets: %w", err)
	}
	return data, nil
}

func sortedKeys(m map[string]TransitionOptions) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
