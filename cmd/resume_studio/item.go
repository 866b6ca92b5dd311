package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Add, edit and arrange items within a section",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <section>",
	Short: "Append an empty item shaped for the section type",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemAdd,
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <section> <item>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemRemove,
}

var itemDuplicateCmd = &cobra.Command{
	Use:   "duplicate <section> <item>",
	Short: "Insert a copy of an item right after it",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemDuplicate,
}

var itemSetCmd = &cobra.Command{
	Use:   "set <section> <item>",
	Short: "Overwrite item fields; only flags that are given change",
	Args:  cobra.ExactArgs(2),
	RunE:  runItemSet,
}

var itemMoveCmd = &cobra.Command{
	Use:   "move <section> <item> <position>",
	Short: "Move an item to a zero-based position",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemMove,
}

var itemFieldNames = []string{
	"company", "organization", "role", "location", "start-date", "end-date",
	"institution", "degree", "field", "name", "title", "issuer", "date",
	"description", "label", "url", "link", "email", "phone",
}

var (
	itemFlags   = map[string]*string{}
	itemCurrent bool
	itemSkills  string
)

func init() {
	for _, name := range itemFieldNames {
		itemFlags[name] = new(string)
		itemSetCmd.Flags().StringVar(itemFlags[name], name, "", "New "+strings.ReplaceAll(name, "-", " "))
	}
	itemSetCmd.Flags().BoolVar(&itemCurrent, "current", false, "Mark the position as ongoing")
	itemSetCmd.Flags().StringVar(&itemSkills, "skills", "", "Comma-separated skill list (replaces the list)")

	itemCmd.AddCommand(itemAddCmd, itemRemoveCmd, itemDuplicateCmd, itemSetCmd, itemMoveCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(_ *cobra.Command, args []string) error {
	sec, err := current.section(args[0])
	if err != nil {
		return err
	}
	id, res := current.store.AddItem(sec.ID)
	if err := applied("add item", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runItemRemove(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	return applied("remove item", current.store.RemoveItem(sec.ID, it.ID))
}

func runItemDuplicate(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	id, res := current.store.DuplicateItem(sec.ID, it.ID)
	if err := applied("duplicate item", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

// itemPatch builds a patch from the flags the user set.
func itemPatch(cmd *cobra.Command) store.ItemPatch {
	get := func(name string) *string { return changed(cmd, name, itemFlags[name]) }
	patch := store.ItemPatch{
		Company:      get("company"),
		Organization: get("organization"),
		Role:         get("role"),
		Location:     get("location"),
		StartDate:    get("start-date"),
		EndDate:      get("end-date"),
		Institution:  get("institution"),
		Degree:       get("degree"),
		Field:        get("field"),
		Name:         get("name"),
		Title:        get("title"),
		Issuer:       get("issuer"),
		Date:         get("date"),
		Description:  get("description"),
		Label:        get("label"),
		URL:          get("url"),
		Link:         get("link"),
		Email:        get("email"),
		Phone:        get("phone"),
	}
	if cmd.Flags().Changed("current") {
		patch.Current = store.Bool(itemCurrent)
	}
	if cmd.Flags().Changed("skills") {
		patch.Skills = splitList(itemSkills)
	}
	return patch
}

// splitList splits a comma-separated list, dropping blanks. The result is never nil.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runItemSet(cmd *cobra.Command, args []string) error {
	if !anyChanged(cmd, append(slices.Clone(itemFieldNames), "current", "skills")) {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	return applied("update item", current.store.UpdateItem(sec.ID, it.ID, itemPatch(cmd)))
}

func runItemMove(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	to, err := parseIndex("position", args[2])
	if err != nil {
		return err
	}
	from := slices.IndexFunc(sec.Items, func(x types.Item) bool { return x.ID == it.ID })
	return applied("move item", current.store.ReorderItems(sec.ID, from, to))
}
