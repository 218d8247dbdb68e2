package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/numfield/internal/config"
	"github.com/muurk/numfield/internal/numinput"
	"github.com/muurk/numfield/internal/ui"
)

var (
	saveFlags          fieldFlags
	profileDescription string
	profileMakeDefault bool
	profileYes         bool
	profileForce       bool
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileInitCmd)

	saveFlags.register(profileSaveCmd)
	profileSaveCmd.Flags().StringVar(&profileDescription, "description", "", "Description shown in 'profile list' and as the field title")
	profileSaveCmd.Flags().BoolVar(&profileMakeDefault, "default", false, "Use this profile when no --profile is given")

	profileDeleteCmd.Flags().BoolVarP(&profileYes, "yes", "y", false, "Delete without asking")
	profileInitCmd.Flags().BoolVar(&profileForce, "force", false, "Overwrite an existing profiles file")
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named field profiles",
	Long: `Manage named field profiles stored in the numfield profiles file.

Built-in profiles (usd, eur, jpy, cents) are always available; a saved
profile with the same name takes precedence.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved and built-in profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintTable(profileTable(reg))
		return nil
	},
}

// profileTable lists saved profiles first, then built-ins not shadowed by
// a saved profile. The default profile is marked with "*".
func profileTable(reg *config.Registry) *ui.Table {
	t := ui.NewTable("NAME", "LOCALE", "CURRENCY", "SOURCE", "DESCRIPTION")
	row := func(name, source string, p *config.Profile) {
		if name == reg.Preferences.DefaultProfile {
			name += " *"
		}
		t.AddRow(name, orDefault(p.Locale, "en-US"), orDefault(p.Currency, "none"), source, p.Description)
	}

	for _, name := range reg.ProfileNames() {
		row(name, "saved", reg.Profiles[name])
	}
	builtinNames := make([]string, 0, len(config.BuiltinProfiles))
	for name := range config.BuiltinProfiles {
		builtinNames = append(builtinNames, name)
	}
	slices.Sort(builtinNames)
	for _, name := range builtinNames {
		if reg.GetProfile(name) == nil {
			row(name, "builtin", config.BuiltinProfiles[name])
		}
	}
	return t
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		p := reg.LookupProfile(args[0])
		if p == nil {
			return fmt.Errorf("unknown profile %q", args[0])
		}

		data, err := yaml.Marshal(map[string]*config.Profile{args[0]: p})
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save field settings as a profile",
	Long: `Save field settings under a name.

Settings start from --profile (or the default profile) and are overridden
by the other field flags, so an existing profile can be copied and
adjusted in one step.`,
	Example: `  numfield profile save chf --locale de-CH --currency CHF
  numfield profile save budget --profile usd --min 0 --max 10000 --default`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSave,
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := config.ValidateProfileName(name); err != nil {
		return err
	}
	opts, _, reg, err := saveFlags.resolveCommand(cmd)
	if err != nil {
		return err
	}

	// Only valid settings are saved.
	if _, err := numinput.New(numinput.NewMemoryField(""), opts, numinput.Callbacks{}); err != nil {
		return fieldSettingsError(cmd, err)
	}

	description := profileDescription
	if description == "" {
		if existing := reg.LookupProfile(name); existing != nil {
			description = existing.Description
		}
	}
	reg.SetProfile(name, config.ProfileFromOptions(opts, description))
	if profileMakeDefault {
		reg.Preferences.DefaultProfile = name
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	path, _ := config.GetConfigPath()
	details := append([]ui.Param{{Key: "File", Value: path}}, describe(opts, name)...)
	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Profile saved", details...)
	return nil
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		reg, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		if reg.GetProfile(name) == nil {
			if config.BuiltinProfiles[name] != nil {
				return fmt.Errorf("profile %q is built in and cannot be deleted", name)
			}
			return fmt.Errorf("unknown profile %q", name)
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		if !profileYes {
			consequence := fmt.Sprintf("Profile %q is removed from the profiles file", name)
			if !p.Confirm(cmd.InOrStdin(), "Delete profile "+name, consequence) {
				return nil
			}
		}

		reg.DeleteProfile(name)
		if err := reg.Save(); err != nil {
			return fmt.Errorf("failed to save profiles: %w", err)
		}
		p.PrintSuccess("Profile deleted", ui.Param{Key: "Name", Value: name})
		return nil
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a profiles file holding the built-in profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !profileForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cannot access %s: %w", path, err)
		}

		if err := config.CreateDefaultConfig(); err != nil {
			return fmt.Errorf("failed to write profiles: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Profiles file written", ui.Param{Key: "File", Value: path})
		return nil
	},
}
