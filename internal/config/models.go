package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numfield/internal/numinput"
)

// Registry represents the entire user configuration file.
// This stores named field profiles and application preferences.
type Registry struct {
	Version     int                 `yaml:"version"`
	Profiles    map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Profile is a named, reusable field configuration.
type Profile struct {
	Description       string           `yaml:"description,omitempty"`
	Locale            string           `yaml:"locale,omitempty"`              // BCP 47 tag (e.g., "de-DE")
	Currency          string           `yaml:"currency,omitempty"`            // ISO 4217 code (e.g., "EUR")
	Precision         *int             `yaml:"precision,omitempty"`           // Fixed fraction digits
	ValueAsInteger    bool             `yaml:"value_as_integer,omitempty"`    // Expose values in minor units
	AutoDecimalDigits bool             `yaml:"auto_decimal_digits,omitempty"` // Digits shift in from the right
	AllowNegative     *bool            `yaml:"allow_negative,omitempty"`      // Defaults to true
	DistractionFree   *DistractionFree `yaml:"distraction_free,omitempty"`    // Defaults to all flags set
	ValueRange        *ValueRange      `yaml:"value_range,omitempty"`
	LastUsed          time.Time        `yaml:"last_used,omitempty"`
}

// DistractionFree is either a boolean (all flags) or a mapping of flags:
//
//	distraction_free: false
//	distraction_free:
//	  hide_currency_symbol: true
type DistractionFree struct {
	HideCurrencySymbol          bool `yaml:"hide_currency_symbol"`
	HideNegligibleDecimalDigits bool `yaml:"hide_negligible_decimal_digits"`
	HideGroupingSymbol          bool `yaml:"hide_grouping_symbol"`
}

// UnmarshalYAML accepts the boolean shorthand as well as the mapping form.
func (d *DistractionFree) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var all bool
		if err := node.Decode(&all); err != nil {
			return fmt.Errorf("distraction_free must be a boolean or a mapping: %w", err)
		}
		*d = DistractionFree{all, all, all}
		return nil
	}
	type plain DistractionFree
	return node.Decode((*plain)(d))
}

// ValueRange bounds are stored as decimal strings so they survive YAML
// round trips exactly.
type ValueRange struct {
	Min string `yaml:"min,omitempty"`
	Max string `yaml:"max,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultProfile  string `yaml:"default_profile,omitempty"` // Profile used by "edit" without --profile
	DiscoverTimeout int    `yaml:"discover_timeout"`          // mDNS discovery timeout in seconds
	ServerPort      int    `yaml:"server_port"`               // Default port for numfield-server
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DiscoverTimeout: 5,
		ServerPort:      8765,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Profiles:    make(map[string]*Profile),
		Preferences: defaultPreferences(),
	}
}

// GetProfile retrieves a profile by name.
// Returns nil if the profile doesn't exist in the registry.
func (r *Registry) GetProfile(name string) *Profile {
	return r.Profiles[name]
}

// SetProfile adds or replaces a profile.
func (r *Registry) SetProfile(name string, p *Profile) {
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = p
}

// DeleteProfile removes a profile. It reports whether the profile existed.
func (r *Registry) DeleteProfile(name string) bool {
	if _, ok := r.Profiles[name]; !ok {
		return false
	}
	delete(r.Profiles, name)
	if r.Preferences != nil && r.Preferences.DefaultProfile == name {
		r.Preferences.DefaultProfile = ""
	}
	return true
}

// ProfileNames returns the profile names in sorted order.
func (r *Registry) ProfileNames() []string {
	names := make([]string, 0, len(r.Profiles))
	for name := range r.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TouchProfile updates the last used timestamp of a profile.
func (r *Registry) TouchProfile(name string) {
	if p := r.Profiles[name]; p != nil {
		p.LastUsed = time.Now()
	}
}

// Options converts the profile into controller options. Unset fields take
// the numinput defaults.
func (p *Profile) Options() (numinput.Options, error) {
	opts := numinput.DefaultOptions()
	opts.Locale = p.Locale
	opts.Currency = p.Currency
	opts.Precision = p.Precision
	opts.ValueAsInteger = p.ValueAsInteger
	opts.AutoDecimalDigits = p.AutoDecimalDigits
	if p.AllowNegative != nil {
		opts.AllowNegative = *p.AllowNegative
	}
	if p.DistractionFree != nil {
		opts.DistractionFree = numinput.DistractionFree(*p.DistractionFree)
	}

	if p.ValueRange != nil {
		var err error
		if opts.ValueRange.Min, err = parseBound("min", p.ValueRange.Min); err != nil {
			return numinput.Options{}, err
		}
		if opts.ValueRange.Max, err = parseBound("max", p.ValueRange.Max); err != nil {
			return numinput.Options{}, err
		}
	}

	return opts, nil
}

func parseBound(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid value_range.%s %q: %w", name, s, err)
	}
	return &d, nil
}

// ProfileFromOptions captures controller options as a profile.
func ProfileFromOptions(opts numinput.Options, description string) *Profile {
	allowNegative := opts.AllowNegative
	df := DistractionFree(opts.DistractionFree)
	p := &Profile{
		Description:       description,
		Locale:            opts.Locale,
		Currency:          opts.Currency,
		Precision:         opts.Precision,
		ValueAsInteger:    opts.ValueAsInteger,
		AutoDecimalDigits: opts.AutoDecimalDigits,
		AllowNegative:     &allowNegative,
		DistractionFree:   &df,
	}
	if opts.ValueRange.Min != nil || opts.ValueRange.Max != nil {
		p.ValueRange = &ValueRange{}
		if opts.ValueRange.Min != nil {
			p.ValueRange.Min = opts.ValueRange.Min.String()
		}
		if opts.ValueRange.Max != nil {
			p.ValueRange.Max = opts.ValueRange.Max.String()
		}
	}
	return p
}

// BuiltinProfiles are written by CreateDefaultConfig and are available even
// without a configuration file.
var BuiltinProfiles = map[string]*Profile{
	"usd": {
		Description: "US dollars",
		Locale:      "en-US",
		Currency:    "USD",
	},
	"eur": {
		Description: "Euros, German formatting",
		Locale:      "de-DE",
		Currency:    "EUR",
	},
	"jpy": {
		Description: "Japanese yen, no fraction digits",
		Locale:      "ja-JP",
		Currency:    "JPY",
	},
	"cents": {
		Description:       "US dollars typed as cents, value in minor units",
		Locale:            "en-US",
		Currency:          "USD",
		ValueAsInteger:    true,
		AutoDecimalDigits: true,
	},
}

// LookupProfile returns the named profile from the registry, falling back
// to BuiltinProfiles.
func (r *Registry) LookupProfile(name string) *Profile {
	if p := r.GetProfile(name); p != nil {
		return p
	}
	return BuiltinProfiles[name]
}
