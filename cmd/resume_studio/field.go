package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Edit the label/value fields of a custom item",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <section> <item>",
	Short: "Append a field labelled \"New Field\"",
	Args:  cobra.ExactArgs(2),
	RunE:  runFieldAdd,
}

var fieldRemoveCmd = &cobra.Command{
	Use:   "remove <section> <item> <field>",
	Short: "Remove a field",
	Args:  cobra.ExactArgs(3),
	RunE:  runFieldRemove,
}

var fieldSetCmd = &cobra.Command{
	Use:   "set <section> <item> <field>",
	Short: "Change the label and/or value of a field",
	Args:  cobra.ExactArgs(3),
	RunE:  runFieldSet,
}

var (
	fieldLabel string
	fieldValue string
)

func init() {
	fieldSetCmd.Flags().StringVar(&fieldLabel, "label", "", "New label")
	fieldSetCmd.Flags().StringVar(&fieldValue, "value", "", "New value")

	fieldCmd.AddCommand(fieldAddCmd, fieldRemoveCmd, fieldSetCmd)
	rootCmd.AddCommand(fieldCmd)
}

func runFieldAdd(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	id, res := current.store.AddCustomField(sec.ID, it.ID)
	if err := applied("add field", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runFieldRemove(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	fieldID, err := resolveField(it, args[2])
	if err != nil {
		return err
	}
	return applied("remove field", current.store.RemoveCustomField(sec.ID, it.ID, fieldID))
}

func runFieldSet(cmd *cobra.Command, args []string) error {
	if !anyChanged(cmd, []string{"label", "value"}) {
		return fmt.Errorf("nothing to change: pass --label and/or --value")
	}
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	fieldID, err := resolveField(it, args[2])
	if err != nil {
		return err
	}
	patch := store.FieldPatch{
		Label: changed(cmd, "label", &fieldLabel),
		Value: changed(cmd, "value", &fieldValue),
	}
	return applied("update field", current.store.UpdateCustomField(sec.ID, it.ID, fieldID, patch))
}
