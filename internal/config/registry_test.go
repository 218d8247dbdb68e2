package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numfield/internal/numinput"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "numfield") {
		t.Errorf("GetConfigDir() = %v, should contain 'numfield'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME applies to Linux and other Unix systems")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if want := filepath.Join(xdg, "numfield", "profiles.yaml"); configPath != want {
		t.Errorf("GetConfigPath() = %v, want %v", configPath, want)
	}
}

func TestGetConfigPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(ConfigPathEnvVar, want)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("GetConfigPath() = %v, want %v", got, want)
	}
}

func TestValidateProfileName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"usd", false},
		{"fuel-price_2", false},
		{"", true},
		{"EUR", true},
		{"-leading", true},
		{"with space", true},
		{strings.Repeat("a", 33), true},
	}

	for _, tt := range tests {
		if err := ValidateProfileName(tt.name); (err != nil) != tt.wantErr {
			t.Errorf("ValidateProfileName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadRegistryFrom_PreferenceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("version: 1\npreferences:\n  server_port: 9000\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	reg, err := LoadRegistryFrom(path)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.Preferences.ServerPort != 9000 || reg.Preferences.DiscoverTimeout != 5 {
		t.Errorf("Preferences = %+v, want port 9000 and the default timeout", reg.Preferences)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Profiles == nil {
		t.Error("NewRegistry().Profiles should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.DiscoverTimeout != 5 {
		t.Errorf("DiscoverTimeout = %v, want 5", reg.Preferences.DiscoverTimeout)
	}
	if reg.Preferences.ServerPort != 8765 {
		t.Errorf("ServerPort = %v, want 8765", reg.Preferences.ServerPort)
	}
}

func TestRegistryProfiles(t *testing.T) {
	reg := NewRegistry()
	reg.SetProfile("zeta", &Profile{Currency: "CHF"})
	reg.SetProfile("alpha", &Profile{Currency: "GBP"})
	reg.Preferences.DefaultProfile = "zeta"

	if got := reg.ProfileNames(); len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("ProfileNames() = %v, want [alpha zeta]", got)
	}

	reg.TouchProfile("alpha")
	if reg.GetProfile("alpha").LastUsed.IsZero() {
		t.Error("TouchProfile() should set LastUsed")
	}

	if !reg.DeleteProfile("zeta") {
		t.Error("DeleteProfile() = false for an existing profile")
	}
	if reg.DeleteProfile("zeta") {
		t.Error("DeleteProfile() = true for a missing profile")
	}
	if reg.Preferences.DefaultProfile != "" {
		t.Error("deleting the default profile should clear DefaultProfile")
	}
}

func TestRegistryLookupProfile(t *testing.T) {
	reg := NewRegistry()

	if p := reg.LookupProfile("eur"); p == nil || p.Currency != "EUR" {
		t.Errorf("LookupProfile(eur) = %+v, want the built-in profile", p)
	}

	reg.SetProfile("eur", &Profile{Locale: "fr-FR", Currency: "EUR"})
	if p := reg.LookupProfile("eur"); p.Locale != "fr-FR" {
		t.Errorf("LookupProfile(eur).Locale = %v, want the user profile to win", p.Locale)
	}

	if reg.LookupProfile("missing") != nil {
		t.Error("LookupProfile(missing) should return nil")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "profiles.yaml")

	precision := 3
	reg := NewRegistry()
	reg.SetProfile("fuel", &Profile{
		Description:     "Fuel price",
		Locale:          "en-GB",
		Currency:        "GBP",
		Precision:       &precision,
		DistractionFree: &DistractionFree{HideGroupingSymbol: true},
		ValueRange:      &ValueRange{Min: "0", Max: "9.999"},
	})
	reg.Preferences.DefaultProfile = "fuel"

	if err := reg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after SaveTo()")
	}

	loaded, err := LoadRegistryFrom(configPath)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}

	p := loaded.GetProfile("fuel")
	if p == nil {
		t.Fatal("profile should exist in loaded registry")
	}
	if p.Currency != "GBP" || p.Precision == nil || *p.Precision != 3 {
		t.Errorf("loaded profile = %+v", p)
	}
	if p.DistractionFree == nil || !p.DistractionFree.HideGroupingSymbol || p.DistractionFree.HideCurrencySymbol {
		t.Errorf("loaded DistractionFree = %+v", p.DistractionFree)
	}
	if p.ValueRange == nil || p.ValueRange.Max != "9.999" {
		t.Errorf("loaded ValueRange = %+v", p.ValueRange)
	}
	if loaded.Preferences.DefaultProfile != "fuel" {
		t.Errorf("DefaultProfile = %v, want fuel", loaded.Preferences.DefaultProfile)
	}
}

func TestLoadRegistryFrom(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"Valid: minimal", "version: 1\n", false},
		{"Valid: boolean distraction free", "version: 1\nprofiles:\n  x:\n    distraction_free: false\n", false},
		{"Invalid: version", "version: 2\n", true},
		{"Invalid: yaml", "version: [\n", true},
		{"Invalid: distraction free", "version: 1\nprofiles:\n  x:\n    distraction_free: maybe\n", true},
		{"Invalid: profile name", "version: 1\nprofiles:\n  Bad Name:\n    currency: USD\n", true},
		{"Invalid: empty profile", "version: 1\nprofiles:\n  x:\n", true},
		{"Invalid: range bound", "version: 1\nprofiles:\n  x:\n    value_range:\n      min: ten\n", true},
		{"Invalid: default profile", "version: 1\npreferences:\n  default_profile: nope\n", true},
		{"Valid: built-in default profile", "version: 1\npreferences:\n  default_profile: eur\n", false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			reg, err := LoadRegistryFrom(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadRegistryFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (reg.Profiles == nil || reg.Preferences == nil) {
				t.Error("LoadRegistryFrom() should initialize Profiles and Preferences")
			}
		})
	}

	reg, err := LoadRegistryFrom(filepath.Join(dir, "missing.yaml"))
	if err != nil || reg.Version != 1 {
		t.Errorf("LoadRegistryFrom(missing) = %+v, %v; want a default registry", reg, err)
	}
}

func TestDistractionFree_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want DistractionFree
	}{
		{"true", "true", DistractionFree{true, true, true}},
		{"false", "false", DistractionFree{}},
		{"mapping", "hide_currency_symbol: true\nhide_grouping_symbol: true", DistractionFree{
			HideCurrencySymbol: true,
			HideGroupingSymbol: true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DistractionFree
			if err := yaml.Unmarshal([]byte(tt.yaml), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProfileOptions(t *testing.T) {
	no := false
	p := &Profile{
		Locale:          "de-DE",
		Currency:        "EUR",
		AllowNegative:   &no,
		DistractionFree: &DistractionFree{HideCurrencySymbol: true},
		ValueRange:      &ValueRange{Min: "-5", Max: "100.25"},
	}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.Locale != "de-DE" || opts.Currency != "EUR" || opts.AllowNegative {
		t.Errorf("Options() = %+v", opts)
	}
	if opts.DistractionFree != (numinput.DistractionFree{HideCurrencySymbol: true}) {
		t.Errorf("DistractionFree = %+v", opts.DistractionFree)
	}
	if opts.ValueRange.Min == nil || opts.ValueRange.Min.Cmp(decimal.MustParse("-5")) != 0 {
		t.Errorf("ValueRange.Min = %v, want -5", opts.ValueRange.Min)
	}
	if opts.ValueRange.Max == nil || opts.ValueRange.Max.Cmp(decimal.MustParse("100.25")) != 0 {
		t.Errorf("ValueRange.Max = %v, want 100.25", opts.ValueRange.Max)
	}

	defaults, err := (&Profile{}).Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if !defaults.AllowNegative || defaults.DistractionFree != numinput.DistractionFreeAll {
		t.Errorf("empty profile should yield numinput defaults, got %+v", defaults)
	}

	bad := &Profile{ValueRange: &ValueRange{Max: "lots"}}
	if _, err := bad.Options(); err == nil {
		t.Error("Options() with an invalid bound should fail")
	}
}

func TestProfileFromOptions(t *testing.T) {
	opts := numinput.DefaultOptions()
	opts.Currency = "USD"
	opts.AutoDecimalDigits = true
	lo := decimal.MustParse("1.5")
	opts.ValueRange.Min = &lo

	p := ProfileFromOptions(opts, "test")
	back, err := p.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if back.Currency != "USD" || !back.AutoDecimalDigits || !back.AllowNegative {
		t.Errorf("round trip = %+v", back)
	}
	if back.ValueRange.Min == nil || back.ValueRange.Min.Cmp(lo) != 0 || back.ValueRange.Max != nil {
		t.Errorf("round trip range = %+v", back.ValueRange)
	}
}

func TestBuiltinProfiles(t *testing.T) {
	for name, p := range BuiltinProfiles {
		t.Run(name, func(t *testing.T) {
			opts, err := p.Options()
			if err != nil {
				t.Fatalf("Options() error = %v", err)
			}
			if _, err := numinput.New(numinput.NewMemoryField(""), opts, numinput.Callbacks{}); err != nil {
				t.Errorf("built-in profile %q is not a valid configuration: %v", name, err)
			}
		})
	}
}

func BenchmarkLookupProfile(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.LookupProfile("usd")
	}
}
