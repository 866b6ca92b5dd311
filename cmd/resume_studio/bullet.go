package main

import (
	"github.com/spf13/cobra"
)

var bulletCmd = &cobra.Command{
	Use:   "bullet",
	Short: "Edit the bullet list of an item (bullets are numbered from 0)",
}

var bulletAddCmd = &cobra.Command{
	Use:   "add <section> <item> <text>",
	Short: "Append a bullet",
	Args:  cobra.ExactArgs(3),
	RunE:  runBulletAdd,
}

var bulletRemoveCmd = &cobra.Command{
	Use:   "remove <section> <item> <index>",
	Short: "Remove a bullet",
	Args:  cobra.ExactArgs(3),
	RunE:  runBulletRemove,
}

var bulletSetCmd = &cobra.Command{
	Use:   "set <section> <item> <index> <text>",
	Short: "Replace the text of a bullet",
	Args:  cobra.ExactArgs(4),
	RunE:  runBulletSet,
}

var bulletMoveCmd = &cobra.Command{
	Use:   "move <section> <item> <from> <to>",
	Short: "Move a bullet to another position",
	Args:  cobra.ExactArgs(4),
	RunE:  runBulletMove,
}

func init() {
	bulletCmd.AddCommand(bulletAddCmd, bulletRemoveCmd, bulletSetCmd, bulletMoveCmd)
	rootCmd.AddCommand(bulletCmd)
}

func runBulletAdd(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	return applied("add bullet", current.store.AddBullet(sec.ID, it.ID, args[2]))
}

func runBulletRemove(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	index, err := parseIndex("index", args[2])
	if err != nil {
		return err
	}
	return applied("remove bullet", current.store.RemoveBullet(sec.ID, it.ID, index))
}

func runBulletSet(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	index, err := parseIndex("index", args[2])
	if err != nil {
		return err
	}
	return applied("update bullet", current.store.UpdateBullet(sec.ID, it.ID, index, args[3]))
}

func runBulletMove(_ *cobra.Command, args []string) error {
	sec, it, err := current.item(args[0], args[1])
	if err != nil {
		return err
	}
	from, err := parseIndex("from", args[2])
	if err != nil {
		return err
	}
	to, err := parseIndex("to", args[3])
	if err != nil {
		return err
	}
	return applied("move bullet", current.store.ReorderBullets(sec.ID, it.ID, from, to))
}
