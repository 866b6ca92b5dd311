package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Edit the identity and contact block of the active version",
}

var basicsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Overwrite basics fields; only flags that are given change",
	Args:  cobra.NoArgs,
	RunE:  runBasicsSet,
}

var basicsProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage external profile links",
}

var basicsProfileAddCmd = &cobra.Command{
	Use:   "add <network> <url> [username]",
	Short: "Add or replace the profile for a network",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runBasicsProfileAdd,
}

var basicsProfileRemoveCmd = &cobra.Command{
	Use:   "remove <network>",
	Short: "Remove the profile for a network",
	Args:  cobra.ExactArgs(1),
	RunE:  runBasicsProfileRemove,
}

var basicsFieldNames = []string{"name", "label", "email", "phone", "url", "summary", "location"}

var basicsFlags = map[string]*string{
	"name":     new(string),
	"label":    new(string),
	"email":    new(string),
	"phone":    new(string),
	"url":      new(string),
	"summary":  new(string),
	"location": new(string),
}

func init() {
	for _, name := range basicsFieldNames {
		basicsSetCmd.Flags().StringVar(basicsFlags[name], name, "", "New "+name)
	}

	basicsProfileCmd.AddCommand(basicsProfileAddCmd, basicsProfileRemoveCmd)
	basicsCmd.AddCommand(basicsSetCmd, basicsProfileCmd)
	rootCmd.AddCommand(basicsCmd)
}

// changed returns the flag's value when the user set it.
func changed(cmd *cobra.Command, name string, value *string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return store.String(*value)
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runBasicsSet(cmd *cobra.Command, _ []string) error {
	patch := store.BasicsPatch{
		Name:     changed(cmd, "name", basicsFlags["name"]),
		Label:    changed(cmd, "label", basicsFlags["label"]),
		Email:    changed(cmd, "email", basicsFlags["email"]),
		Phone:    changed(cmd, "phone", basicsFlags["phone"]),
		URL:      changed(cmd, "url", basicsFlags["url"]),
		Summary:  changed(cmd, "summary", basicsFlags["summary"]),
		Location: changed(cmd, "location", basicsFlags["location"]),
	}
	if !anyChanged(cmd, basicsFieldNames) {
		return fmt.Errorf("nothing to change: pass at least one of --name, --label, --email, --phone, --url, --summary, --location")
	}
	return applied("update basics", current.store.UpdateDocumentBasics(patch))
}

func runBasicsProfileAdd(_ *cobra.Command, args []string) error {
	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	profile := types.Profile{Network: args[0], URL: args[1]}
	if len(args) == 3 {
		profile.Username = args[2]
	}
	profiles := slices.DeleteFunc(slices.Clone(v.Document.Basics.Profiles), func(p types.Profile) bool {
		return strings.EqualFold(p.Network, profile.Network)
	})
	profiles = append(profiles, profile)
	return applied("add profile", current.store.UpdateDocumentBasics(store.BasicsPatch{Profiles: profiles}))
}

func runBasicsProfileRemove(_ *cobra.Command, args []string) error {
	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	before := v.Document.Basics.Profiles
	profiles := slices.DeleteFunc(slices.Clone(before), func(p types.Profile) bool {
		return strings.EqualFold(p.Network, args[0])
	})
	if len(profiles) == len(before) {
		return &RefError{Kind: "profile", Ref: args[0]}
	}
	return applied("remove profile", current.store.UpdateDocumentBasics(store.BasicsPatch{Profiles: profiles}))
}
