package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "numfield"
	configFile = "profiles.yaml"

	// ConfigPathEnvVar overrides the profiles file location.
	ConfigPathEnvVar = "NUMFIELD_CONFIG"

	currentVersion = 1
)

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// fileMutex serializes writes to the profiles file
	fileMutex sync.Mutex

	profileNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)
)

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/numfield or $HOME/.config/numfield
//   - macOS: $HOME/.config/numfield (XDG layout rather than Application Support)
//   - Windows: %LOCALAPPDATA%\numfield
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", errors.New("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && runtime.GOOS != "darwin" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the profiles file path, honouring NUMFIELD_CONFIG.
func GetConfigPath() (string, error) {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// LoadRegistry loads the profiles file once per process. A missing file
// yields a new default registry.
func LoadRegistry() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		path, err := GetConfigPath()
		if err != nil {
			globalRegistryErr = fmt.Errorf("failed to get config path: %w", err)
			return
		}
		globalRegistry, globalRegistryErr = LoadRegistryFrom(path)
	})
	return globalRegistry, globalRegistryErr
}

// LoadRegistryFrom loads a registry from an explicit path.
// A missing file yields a new default registry.
func LoadRegistryFrom(configPath string) (*Registry, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if registry.Version != currentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, currentVersion)
	}

	if registry.Profiles == nil {
		registry.Profiles = make(map[string]*Profile)
	}
	registry.Preferences = withDefaults(registry.Preferences)

	if err := registry.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return &registry, nil
}

// withDefaults fills preferences missing from the file.
func withDefaults(p *Preferences) *Preferences {
	def := defaultPreferences()
	if p == nil {
		return def
	}
	if p.DiscoverTimeout <= 0 {
		p.DiscoverTimeout = def.DiscoverTimeout
	}
	if p.ServerPort <= 0 {
		p.ServerPort = def.ServerPort
	}
	return p
}

// validate checks what can be checked without building a formatter:
// profile names and range bounds. Locales and currencies are checked when
// a profile is used.
func (r *Registry) validate() error {
	for _, name := range r.ProfileNames() {
		if err := ValidateProfileName(name); err != nil {
			return err
		}
		p := r.Profiles[name]
		if p == nil {
			return fmt.Errorf("profile %q is empty", name)
		}
		if p.ValueRange != nil {
			if _, err := parseBound("min", p.ValueRange.Min); err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
			if _, err := parseBound("max", p.ValueRange.Max); err != nil {
				return fmt.Errorf("profile %q: %w", name, err)
			}
		}
	}
	if d := r.Preferences.DefaultProfile; d != "" && r.LookupProfile(d) == nil {
		return fmt.Errorf("default_profile %q does not exist", d)
	}
	return nil
}

// ValidateProfileName reports whether name can be used as a profile key:
// lowercase letters, digits, '-' and '_', at most 32 characters.
func ValidateProfileName(name string) error {
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q (use lowercase letters, digits, '-' and '_')", name)
	}
	return nil
}

// Save writes the registry to the default configuration path.
func (r *Registry) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return r.SaveTo(path)
}

const fileHeader = `# numfield profiles
# Named field configurations used by "numfield edit --profile <name>".
#
# distraction_free accepts true/false or a mapping of
# hide_currency_symbol, hide_negligible_decimal_digits, hide_grouping_symbol.
#
`

// SaveTo writes the registry to configPath through a temporary file and a
// rename, so readers never see a partial file.
func (r *Registry) SaveTo(configPath string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data := append([]byte(fileHeader+"# Location: "+configPath+"\n\n"), body...)

	tmp := configPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmp, configPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// CreateDefaultConfig writes a profiles file holding the built-in profiles
// with "usd" as the default.
func CreateDefaultConfig() error {
	registry := NewRegistry()
	for name, p := range BuiltinProfiles {
		copied := *p
		registry.SetProfile(name, &copied)
	}
	registry.Preferences.DefaultProfile = "usd"
	return registry.Save()
}
