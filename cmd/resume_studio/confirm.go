package main

import (
	"errors"

	"github.com/manifoldco/promptui"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var errAborted = errors.New("aborted")

// confirm asks the user to approve a destructive command. --yes skips the prompt.
func (a *app) confirm(label string) error {
	if a.cfg.AssumeYes {
		return nil
	}
	prompt := promptui.Select{
		Label: label,
		Items: []string{promptNo, promptYes},
	}
	_, answer, err := prompt.Run()
	if err != nil {
		return err
	}
	if answer != promptYes {
		return errAborted
	}
	return nil
}
