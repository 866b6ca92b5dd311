package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/templates"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change the visual settings of the active version",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Overwrite settings; only flags that are given change",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates and their ATS risk",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

// settingsFlagNames maps flag names to their help text, in display order.
var settingsFlagNames = [][2]string{
	{"template", "Template id"},
	{"font", "Font family: sans, serif, mono, montserrat, open-sans, merriweather"},
	{"font-size", "Font size: small, medium, large"},
	{"line-spacing", "Line spacing: tight, normal, relaxed"},
	{"section-spacing", "Section spacing: compact, normal, spacious"},
	{"accent", "Accent color as #rrggbb"},
	{"margins", "Margins: standard, compact, wide"},
	{"page-size", "Page size: A4, Letter"},
	{"header", "Header layout: centered, left, split"},
	{"section-style", "Section heading style: standard, underlined, minimalist, caps"},
	{"variant", "Density: compact, standard, detailed"},
	{"bullet-style", "Bullet glyph: dot, dash, square"},
	{"radius", "Border radius: none, small, full"},
}

var (
	settingsFlags = map[string]*string{}
	settingsLock  bool
)

func init() {
	for _, f := range settingsFlagNames {
		settingsFlags[f[0]] = new(string)
		settingsSetCmd.Flags().StringVar(settingsFlags[f[0]], f[0], "", f[1])
	}
	settingsSetCmd.Flags().BoolVar(&settingsLock, "ats-lock", true, "Keep the ATS-safe lock on")

	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd, templatesCmd)
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	names := []string{"ats-lock"}
	for _, f := range settingsFlagNames {
		names = append(names, f[0])
	}
	if !anyChanged(cmd, names) {
		return fmt.Errorf("nothing to change: pass at least one settings flag")
	}

	v, err := current.activeVersion()
	if err != nil {
		return err
	}

	get := func(name string) *string { return changed(cmd, name, settingsFlags[name]) }
	patch := store.SettingsPatch{
		TemplateID:     get("template"),
		FontFamily:     get("font"),
		FontSize:       get("font-size"),
		LineSpacing:    get("line-spacing"),
		SectionSpacing: get("section-spacing"),
		AccentColor:    get("accent"),
		Margins:        get("margins"),
		PageSize:       get("page-size"),
		HeaderLayout:   get("header"),
		SectionStyle:   get("section-style"),
		Variant:        get("variant"),
		BulletStyle:    get("bullet-style"),
		BorderRadius:   get("radius"),
	}
	if cmd.Flags().Changed("ats-lock") {
		patch.ATSSafeLock = store.Bool(settingsLock)
	}

	next := patch.Merge(v.Settings)
	if _, ok := templates.Lookup(next.TemplateID); !ok {
		return fmt.Errorf("unknown template %q (see 'templates')", next.TemplateID)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if templates.IsHighRisk(next.TemplateID) {
		current.logger.Warn("template is hard for ATS parsers to read", zap.String("template", next.TemplateID))
	}
	return applied("update settings", current.store.UpdateSettings(patch))
}

func runTemplates(_ *cobra.Command, _ []string) error {
	current.printer.PrintTemplates(templates.Registry())
	return nil
}
