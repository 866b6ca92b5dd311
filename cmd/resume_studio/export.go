package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active version as a file",
	Long: "Writes the visible sections of the active version to a file named after the " +
		"candidate (e.g. Alex_Doe_Resume.txt) in the working directory, or to --out.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportType string
	exportOut  string
)

func init() {
	exportCmd.Flags().StringVar(&exportType, "type", export.FormatText, "File type (txt)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	exporter, err := export.ForFormat(exportType)
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = export.FileName(v.Document, exporter.Format())
	}
	if err := export.WriteFile(exporter, v.Document, path); err != nil {
		return err
	}

	abs, _ := filepath.Abs(path)
	current.logger.Debug("exported resume", zap.String("path", abs), zap.String("format", exporter.Format()))
	_, _ = fmt.Fprintln(current.out, path)
	return nil
}
