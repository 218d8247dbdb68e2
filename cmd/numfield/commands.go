package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/numfield/internal/config"
	"github.com/muurk/numfield/internal/discovery"
	"github.com/muurk/numfield/internal/logging"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/protocol"
	"github.com/muurk/numfield/internal/tui"
	"github.com/muurk/numfield/internal/ui"
	"github.com/muurk/numfield/internal/urls"
)

// Field settings, one set per command so flags never leak between them
var (
	rootFlags   fieldFlags
	editFlags   fieldFlags
	formatFlags fieldFlags
	parseFlags  fieldFlags
)

var (
	initialValue    string
	outputFormat    string
	discoverTimeout int
)

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(discoverCmd)

	rootCmd.Flags().StringVar(&initialValue, "value", "", "Initial value")
}

// editCmd opens the interactive field
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive field",
	Long: `Open an interactive currency field in the terminal.

Press tab to focus the field and start typing. While focused, the
currency symbol, grouping and trailing zero fraction digits are hidden
(see --distraction-free). Enter commits the value, esc leaves the field,
and q quits once the field is unfocused. The committed value is printed
on exit.`,
	Example: `  # Dollars with the default settings
  numfield edit

  # Euros formatted for Germany, starting at 1234.5
  numfield edit --locale de-DE --currency EUR --value 1234.5

  # Cents typed from the right, limited to 0..500
  numfield edit --profile cents --min 0 --max 50000

  # Keep the currency symbol visible while typing
  numfield edit --distraction-free grouping,decimals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, &editFlags)
	},
}

func init() {
	editFlags.register(editCmd)
	editCmd.Flags().StringVar(&initialValue, "value", "", "Initial value")
}

func runEdit(cmd *cobra.Command, flags *fieldFlags) error {
	opts, name, reg, err := flags.resolveCommand(cmd)
	if err != nil {
		return err
	}

	var initial *decimal.Decimal
	if initialValue != "" {
		d, err := decimal.Parse(strings.TrimSpace(initialValue))
		if err != nil {
			return fmt.Errorf("invalid --value %q: %w", initialValue, err)
		}
		initial = &d
	}

	title := "Amount"
	if p := reg.LookupProfile(name); p != nil && p.Description != "" {
		title = p.Description
	}

	model, err := tui.NewFieldModel(title, opts, initial)
	if err != nil {
		return fieldSettingsError(cmd, err)
	}

	v, err := tui.Run(model)
	if err != nil {
		return fmt.Errorf("field error: %w", err)
	}

	if reg.GetProfile(name) != nil {
		reg.TouchProfile(name)
		if err := reg.Save(); err != nil {
			logging.Warn("Failed to record profile use", zap.String("profile", name), zap.Error(err))
		}
	}

	return printValue(cmd, "text", opts, name, v)
}

// formatCmd commits a value and prints its formatted text
var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Format a value as the field would display it",
	Long: `Commit a value through the field and print the result.

The value is clamped to --min/--max and formatted for the locale and
currency. With --integer the value is read in minor units (e.g., cents).

When stdout is not a terminal, text output is a single tab-separated
line: the number, then the formatted text.`,
	Example: `  numfield format 1234.5
  numfield format --locale de-DE --currency EUR 1234.5
  numfield format --integer 123450
  numfield format --max 100 250 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatFlags.register(formatCmd)
	formatCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}
	opts, name, _, err := formatFlags.resolveCommand(cmd)
	if err != nil {
		return err
	}

	d, err := decimal.Parse(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}

	ctrl, err := numinput.New(numinput.NewMemoryField(""), opts, numinput.Callbacks{},
		numinput.WithLogger(logging.Named("format")))
	if err != nil {
		return fieldSettingsError(cmd, err)
	}
	ctrl.SetValue(d)

	return printValue(cmd, outputFormat, opts, name, ctrl.Value())
}

// parseCmd runs text through the field as if it had been typed
var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Read a number from formatted text",
	Long: `Enter text into an unfocused field, then leave it, and print the value.

The text goes through the same conformance as typing: symbols of the
locale are recognised, misplaced characters are dropped, and the result
is committed with the range applied. Text that holds no number exits
with an error.`,
	Example: `  numfield parse '$1,234.56'
  numfield parse --locale de-DE --currency EUR '1.234,56 €'
  numfield parse --format json -- -42`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseFlags.register(parseCmd)
	parseCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}
	opts, name, _, err := parseFlags.resolveCommand(cmd)
	if err != nil {
		return err
	}

	field := numinput.NewMemoryField("")
	ctrl, err := numinput.New(field, opts, numinput.Callbacks{},
		numinput.WithLogger(logging.Named("parse")))
	if err != nil {
		return fieldSettingsError(cmd, err)
	}

	text := args[0]
	field.Edit(text, utf8.RuneCountInString(text))
	ctrl.Input()
	ctrl.Blur()

	v := ctrl.Value()
	if !v.Valid {
		return fmt.Errorf("%q does not contain a number", text)
	}
	return printValue(cmd, outputFormat, opts, name, v)
}

// discoverCmd lists numfield servers on the network
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find numfield servers on the network",
	Long: `Browse for numfield servers advertised over mDNS/DNS-SD.

Servers started with 'numfield-server serve --mdns' announce themselves as
` + discovery.ServiceType + `. Each result shows the WebSocket URL a client
connects to.`,
	Example: `  numfield discover
  numfield discover --timeout 10`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	timeout := discoverTimeout
	if !cmd.Flags().Changed("timeout") {
		if reg, err := config.LoadRegistry(); err == nil && reg.Preferences.DiscoverTimeout > 0 {
			timeout = reg.Preferences.DiscoverTimeout
		}
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if p.Styled() {
		p.Printf("Scanning for numfield servers (timeout: %ds)...\n\n", timeout)
	}

	services, err := discovery.Scan(cmd.Context(), time.Duration(timeout)*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		r := ui.NewWarningResult("No numfield servers found", ui.Param{Key: "Timeout", Value: fmt.Sprintf("%ds", timeout)})
		r.Hints = []string{
			"Start a server with 'numfield-server serve --mdns'",
			"Check that this machine is on the same network segment",
			"Try increasing --timeout for slower networks",
		}
		p.PrintResult(r)
		return nil
	}

	t := ui.NewTable("INSTANCE", "URL", "LOCALE", "VERSION")
	for _, s := range services {
		t.AddRow(s.Instance, s.FieldURL(), orDefault(s.GetMetadata("locale"), "en-US"), s.GetMetadata("version"))
	}
	p.PrintTable(t)
	return nil
}

func checkOutputFormat() error {
	switch outputFormat {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid --format %q (want text or json)", outputFormat)
}

// printValue writes a committed value. Plain text output is
// "<number>\t<formatted>".
func printValue(cmd *cobra.Command, format string, opts numinput.Options, profile string, v numinput.Value) error {
	out := cmd.OutOrStdout()

	if format == "json" {
		data, err := json.Marshal(protocol.WireValue(v))
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	p := ui.NewPrinter(out)
	if !p.Styled() {
		p.Printf("%s\t%s\n", v, v.Formatted)
		return nil
	}

	p.PrintHeader(ui.NewHeader(cmd.Name(), cmd.CommandPath(), describe(opts, profile)...))
	title := "Value committed"
	if !v.Valid {
		title = "Field cleared"
	}
	p.PrintSuccess(title,
		ui.Param{Key: "Number", Value: v.String()},
		ui.Param{Key: "Formatted", Value: orDefault(v.Formatted, "(empty)")},
	)
	return nil
}

// fieldSettingsError reports invalid field settings with hints for the
// flags that cause them.
func fieldSettingsError(cmd *cobra.Command, err error) error {
	var hints []string
	switch {
	case numinput.IsRangeError(err):
		hints = append(hints, "--min must not exceed --max")
	case numinput.IsConfigError(err):
		hints = append(hints,
			"--locale takes a BCP 47 tag such as en-US or de-DE",
			"--currency takes an ISO 4217 code such as USD or EUR",
		)
	}
	hints = append(hints, "Report formatting bugs at "+urls.Issues)

	p := ui.NewPrinter(cmd.ErrOrStderr())
	if p.Styled() {
		p.PrintError("Invalid field settings", err, hints...)
	}
	return fmt.Errorf("invalid field settings: %w", err)
}
