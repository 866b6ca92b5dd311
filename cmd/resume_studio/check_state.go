package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/persistence"
	"github.com/jonathan/resume-studio/internal/schemas"
)

var checkStateCmd = &cobra.Command{
	Use:   "check-state [file]",
	Short: "Validate a storage file against the state schema",
	Long: "Checks a storage file (default: the one in --data-dir) against the JSON schema " +
		"and the model's structural rules. A file that fails is discarded on load, so run " +
		"this before hand-editing storage.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckState,
}

func init() {
	rootCmd.AddCommand(checkStateCmd)
}

func runCheckState(_ *cobra.Command, args []string) error {
	path := current.files.Path()
	if len(args) == 1 {
		path = args[0]
	}
	if err := schemas.ValidateStateFile(path); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	state, err := persistence.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, _ = fmt.Fprintf(current.out, "%s: ok (%d resume(s))\n", path, len(state.Resumes))
	return nil
}
