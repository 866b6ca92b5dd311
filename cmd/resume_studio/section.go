package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/sections"
	"github.com/jonathan/resume-studio/internal/types"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add, remove and arrange sections of the active version",
	Long: "Sections are referenced by id, by a unique id prefix, or by their type when the " +
		"version holds exactly one section of that type.",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add <type> [title]",
	Short: "Append an empty section",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSectionAdd,
}

var sectionRemoveCmd = &cobra.Command{
	Use:   "remove <section>",
	Short: "Remove a section and its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionRemove,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename <section> <title>",
	Short: "Change a section title",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionRename,
}

var sectionToggleCmd = &cobra.Command{
	Use:   "toggle <section>",
	Short: "Show or hide a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionToggle,
}

var sectionMoveCmd = &cobra.Command{
	Use:   "move <section> <position>",
	Short: "Move a section to a zero-based position",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionMove,
}

var sectionDuplicateCmd = &cobra.Command{
	Use:   "duplicate <section>",
	Short: "Insert a copy of a section right after it",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionDuplicate,
}

var sectionTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the section types that can be added",
	Args:  cobra.NoArgs,
	RunE:  runSectionTypes,
}

func init() {
	sectionCmd.AddCommand(sectionAddCmd, sectionRemoveCmd, sectionRenameCmd, sectionToggleCmd,
		sectionMoveCmd, sectionDuplicateCmd, sectionTypesCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runSectionAdd(_ *cobra.Command, args []string) error {
	title := ""
	if len(args) == 2 {
		title = args[1]
	}
	id, res := current.store.AddSection(types.SectionType(strings.ToLower(args[0])), title)
	if err := applied("add section "+args[0], res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runSectionRemove(_ *cobra.Command, args []string) error {
	sec, err := current.section(args[0])
	if err != nil {
		return err
	}
	return applied("remove section", current.store.RemoveSection(sec.ID))
}

func runSectionRename(_ *cobra.Command, args []string) error {
	sec, err := current.section(args[0])
	if err != nil {
		return err
	}
	return applied("rename section", current.store.UpdateSectionTitle(sec.ID, args[1]))
}

func runSectionToggle(_ *cobra.Command, args []string) error {
	sec, err := current.section(args[0])
	if err != nil {
		return err
	}
	return applied("toggle section", current.store.ToggleSectionVisibility(sec.ID))
}

func runSectionMove(_ *cobra.Command, args []string) error {
	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	sec, err := resolveSection(v, args[0])
	if err != nil {
		return err
	}
	to, err := parseIndex("position", args[1])
	if err != nil {
		return err
	}
	from := slices.IndexFunc(v.Document.Sections, func(s types.Section) bool { return s.ID == sec.ID })
	return applied("move section", current.store.ReorderSections(from, to))
}

func runSectionDuplicate(_ *cobra.Command, args []string) error {
	sec, err := current.section(args[0])
	if err != nil {
		return err
	}
	id, res := current.store.DuplicateSection(sec.ID)
	if err := applied("duplicate section", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runSectionTypes(_ *cobra.Command, _ []string) error {
	for _, t := range types.AllSectionTypes {
		if t == types.SectionBasics {
			continue
		}
		def, _ := sections.Lookup(t)
		_, _ = fmt.Fprintf(current.out, "%-16s %s\n", t, def.Label)
	}
	return nil
}
