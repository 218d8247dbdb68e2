package main

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	"github.com/muurk/numfield/internal/config"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/ui"
)

// fieldFlags are the field settings shared by every command that builds a
// controller. Flags override the selected profile.
type fieldFlags struct {
	profile         string
	locale          string
	currency        string
	precision       int
	autoDecimal     bool
	integer         bool
	min             string
	max             string
	noNegative      bool
	distractionFree string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.profile, "profile", "", "Profile to start from (see 'numfield profile list')")
	fs.StringVar(&f.locale, "locale", "", "BCP 47 locale tag (e.g., en-US, de-DE)")
	fs.StringVar(&f.currency, "currency", "", "ISO 4217 currency code (e.g., USD, EUR); empty for plain numbers")
	fs.IntVar(&f.precision, "precision", 0, "Fixed number of fraction digits")
	fs.BoolVar(&f.autoDecimal, "auto-decimal", false, "Shift typed digits in from the right")
	fs.BoolVar(&f.integer, "integer", false, "Expose values in minor units (e.g., cents)")
	fs.StringVar(&f.min, "min", "", "Smallest committed value")
	fs.StringVar(&f.max, "max", "", "Largest committed value")
	fs.BoolVar(&f.noNegative, "no-negative", false, "Reject negative values")
	fs.StringVar(&f.distractionFree, "distraction-free", "", "Formatting hidden on focus: all, none, or a list of currency,grouping,decimals")
}

// resolve builds controller options from the named profile (or the default
// profile) and the flags that were set. It returns the profile name used.
func (f *fieldFlags) resolve(reg *config.Registry, changed func(string) bool) (numinput.Options, string, error) {
	opts := numinput.DefaultOptions()

	name := f.profile
	if name == "" && reg != nil && reg.Preferences != nil {
		name = reg.Preferences.DefaultProfile
	}
	if name != "" {
		var p *config.Profile
		if reg != nil {
			p = reg.LookupProfile(name)
		} else {
			p = config.BuiltinProfiles[name]
		}
		if p == nil {
			return numinput.Options{}, "", fmt.Errorf("unknown profile %q (see 'numfield profile list')", name)
		}
		var err error
		if opts, err = p.Options(); err != nil {
			return numinput.Options{}, "", fmt.Errorf("profile %q: %w", name, err)
		}
	}

	if changed("locale") {
		opts.Locale = f.locale
	}
	if changed("currency") {
		opts.Currency = strings.ToUpper(f.currency)
	}
	if changed("precision") {
		precision := f.precision
		opts.Precision = &precision
	}
	if changed("auto-decimal") {
		opts.AutoDecimalDigits = f.autoDecimal
	}
	if changed("integer") {
		opts.ValueAsInteger = f.integer
	}
	if changed("no-negative") {
		opts.AllowNegative = !f.noNegative
	}
	if changed("distraction-free") {
		df, err := parseDistractionFree(f.distractionFree)
		if err != nil {
			return numinput.Options{}, "", err
		}
		opts.DistractionFree = df
	}
	if changed("min") {
		d, err := parseBound("min", f.min)
		if err != nil {
			return numinput.Options{}, "", err
		}
		opts.ValueRange.Min = d
	}
	if changed("max") {
		d, err := parseBound("max", f.max)
		if err != nil {
			return numinput.Options{}, "", err
		}
		opts.ValueRange.Max = d
	}

	return opts, name, nil
}

// resolveCommand loads the registry and resolves f against the flags set
// on cmd.
func (f *fieldFlags) resolveCommand(cmd *cobra.Command) (numinput.Options, string, *config.Registry, error) {
	reg, err := config.LoadRegistry()
	if err != nil {
		return numinput.Options{}, "", nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	opts, name, err := f.resolve(reg, cmd.Flags().Changed)
	if err != nil {
		return numinput.Options{}, "", nil, err
	}
	return opts, name, reg, nil
}

// parseDistractionFree accepts "all", "none", or a comma separated list of
// currency, grouping and decimals.
func parseDistractionFree(s string) (numinput.DistractionFree, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "true":
		return numinput.DistractionFreeAll, nil
	case "none", "false", "":
		return numinput.DistractionFreeNone, nil
	}

	var df numinput.DistractionFree
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "currency":
			df.HideCurrencySymbol = true
		case "grouping":
			df.HideGroupingSymbol = true
		case "decimals":
			df.HideNegligibleDecimalDigits = true
		default:
			return numinput.DistractionFree{}, fmt.Errorf("invalid --distraction-free value %q (want all, none, currency, grouping, decimals)", part)
		}
	}
	return df, nil
}

func parseBound(name, s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return &d, nil
}

// describe lists the effective settings for a command header.
func describe(opts numinput.Options, profile string) []ui.Param {
	var params []ui.Param
	if profile != "" {
		params = append(params, ui.Param{Key: "Profile", Value: profile})
	}
	params = append(params,
		ui.Param{Key: "Locale", Value: orDefault(opts.Locale, "en-US")},
		ui.Param{Key: "Currency", Value: orDefault(opts.Currency, "none")},
	)
	if opts.Precision != nil {
		params = append(params, ui.Param{Key: "Precision", Value: fmt.Sprint(*opts.Precision)})
	}
	if r := opts.ValueRange; r.Min != nil || r.Max != nil {
		params = append(params, ui.Param{Key: "Range", Value: formatRange(r)})
	}
	return params
}

func formatRange(r numinput.ValueRange) string {
	lo, hi := "-∞", "∞"
	if r.Min != nil {
		lo = r.Min.String()
	}
	if r.Max != nil {
		hi = r.Max.String()
	}
	return lo + " .. " + hi
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
