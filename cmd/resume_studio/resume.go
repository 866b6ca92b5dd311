package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/templates"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Create, select and manage résumés and their versions",
}

var resumeNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a résumé from the sample document and select it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResumeNew,
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all résumés",
	Args:  cobra.NoArgs,
	RunE:  runResumeList,
}

var resumeSelectCmd = &cobra.Command{
	Use:   "select <resume>",
	Short: "Select a résumé and open its current version",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeSelect,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete <resume>",
	Short: "Delete a résumé with all of its versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

var resumeRenameCmd = &cobra.Command{
	Use:   "rename <resume> <title>",
	Short: "Rename a résumé",
	Args:  cobra.ExactArgs(2),
	RunE:  runResumeRename,
}

var resumeArchiveCmd = &cobra.Command{
	Use:   "archive <resume>",
	Short: "Archive a résumé (use --undo to restore it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeArchive,
}

var resumeDuplicateCmd = &cobra.Command{
	Use:   "duplicate <resume>",
	Short: "Copy a résumé with all of its versions",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDuplicate,
}

var resumeForkCmd = &cobra.Command{
	Use:   "fork [name]",
	Short: "Copy the active version into a new version and switch to it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResumeFork,
}

var resumeUseVersionCmd = &cobra.Command{
	Use:   "use-version <version>",
	Short: "Switch the selected résumé to another version (by id or name)",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUseVersion,
}

var resumeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every résumé",
	Args:  cobra.NoArgs,
	RunE:  runResumeReset,
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the outline of the active version",
	Args:  cobra.NoArgs,
	RunE:  runResumeShow,
}

var (
	resumeTemplate string
	archiveUndo    bool
)

func init() {
	resumeNewCmd.Flags().StringVar(&resumeTemplate, "template", "", "Template id (default from config)")
	resumeArchiveCmd.Flags().BoolVar(&archiveUndo, "undo", false, "Unarchive instead")

	resumeCmd.AddCommand(resumeNewCmd, resumeListCmd, resumeSelectCmd, resumeDeleteCmd,
		resumeRenameCmd, resumeArchiveCmd, resumeDuplicateCmd, resumeForkCmd,
		resumeUseVersionCmd, resumeResetCmd, resumeShowCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeNew(_ *cobra.Command, args []string) error {
	title := ""
	if len(args) == 1 {
		title = args[0]
	}
	templateID := resumeTemplate
	if templateID == "" {
		templateID = current.cfg.DefaultTemplate
	}
	if _, ok := templates.Lookup(templateID); !ok {
		return fmt.Errorf("unknown template %q (see 'templates')", templateID)
	}
	id := current.store.AddResume(title, templateID)
	current.logger.Debug("created resume", zap.String("id", id), zap.String("template", templateID))
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runResumeList(_ *cobra.Command, _ []string) error {
	current.printer.PrintResumes(current.store.Snapshot())
	return nil
}

func runResumeSelect(_ *cobra.Command, args []string) error {
	id, err := resolveResume(current.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	return applied("select resume", current.store.SelectResume(id))
}

func runResumeDelete(_ *cobra.Command, args []string) error {
	state := current.store.Snapshot()
	id, err := resolveResume(state, args[0])
	if err != nil {
		return err
	}
	r, _ := state.FindResume(id)
	if err := current.confirm(fmt.Sprintf("Delete %q and its %d version(s)?", r.Title, len(r.Versions))); err != nil {
		return err
	}
	return applied("delete resume", current.store.DeleteResume(id))
}

func runResumeRename(_ *cobra.Command, args []string) error {
	id, err := resolveResume(current.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	return applied("rename resume", current.store.RenameResume(id, args[1]))
}

func runResumeArchive(_ *cobra.Command, args []string) error {
	id, err := resolveResume(current.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	return applied("archive resume", current.store.SetArchived(id, !archiveUndo))
}

func runResumeDuplicate(_ *cobra.Command, args []string) error {
	id, err := resolveResume(current.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	dupID, res := current.store.DuplicateResume(id)
	if err := applied("duplicate resume", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, dupID)
	return nil
}

func runResumeFork(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	id, res := current.store.ForkVersion(name)
	if err := applied("fork version", res); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(current.out, id)
	return nil
}

func runResumeUseVersion(_ *cobra.Command, args []string) error {
	id, err := resolveVersion(current.store.Snapshot(), args[0])
	if err != nil {
		return err
	}
	return applied("select version", current.store.SelectVersion(id))
}

func runResumeReset(_ *cobra.Command, _ []string) error {
	n := len(current.store.Snapshot().Resumes)
	if err := current.confirm(fmt.Sprintf("Delete all %d résumé(s)?", n)); err != nil {
		return err
	}
	return applied("reset", current.store.Reset())
}

func runResumeShow(_ *cobra.Command, _ []string) error {
	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	current.printer.PrintVersion(v)
	return nil
}
