// Package config provides user configuration management for numfield.
//
// This package manages a YAML file of named field profiles. A profile is a
// saved set of controller options (locale, currency, precision, range and
// distraction-free flags) so a field can be opened with
// "numfield edit --profile eur" instead of repeating flags.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/numfield/profiles.yaml or $HOME/.config/numfield/profiles.yaml
//   - macOS: $HOME/.config/numfield/profiles.yaml
//   - Windows: %LOCALAPPDATA%\numfield\profiles.yaml
//
// Set NUMFIELD_CONFIG to use a different file. Profile names must match
// [a-z0-9][a-z0-9_-]*; a file with invalid names, unparsable range bounds or
// an unknown default_profile is rejected on load.
//
// # File Format
//
//	version: 1
//	profiles:
//	  eur:
//	    locale: de-DE
//	    currency: EUR
//	    distraction_free:
//	      hide_currency_symbol: true
//	    value_range:
//	      min: "0"
//	preferences:
//	  default_profile: eur
//	  discover_timeout: 5
//	  server_port: 8765
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, err := registry.LookupProfile("eur").Options()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
