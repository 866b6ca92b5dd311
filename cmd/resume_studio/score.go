package main

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/evaluation"
	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/logging"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the active version against ATS heuristics",
	Long: "Evaluates the active version (or, with --all, the current version of every " +
		"unarchived résumé) and prints the score, the sub-score breakdown and the issues " +
		"found. --job adds keyword matching against a job description read from a file, " +
		"an http(s) URL, or stdin (\"-\").",
	Args: cobra.NoArgs,
	RunE: runScore,
}

var (
	scoreJob            string
	scoreAll            bool
	scoreBrowser        bool
	scoreBrowserTimeout time.Duration
)

func init() {
	scoreCmd.Flags().StringVar(&scoreJob, "job", "", "Job description: file path, URL, or - for stdin")
	scoreCmd.Flags().BoolVar(&scoreAll, "all", false, "Score every unarchived résumé")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Render thin job pages in headless Chrome")
	scoreCmd.Flags().DurationVar(&scoreBrowserTimeout, "browser-timeout", 30*time.Second, "Headless Chrome timeout")
	rootCmd.AddCommand(scoreCmd)
}

// scoredResume is one entry of the --all JSON output.
type scoredResume struct {
	ResumeID  string       `json:"resumeId"`
	Title     string       `json:"title"`
	VersionID string       `json:"versionId"`
	Report    types.Report `json:"report"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []ingestion.Option{
		ingestion.WithStdin(cmd.InOrStdin()),
		ingestion.WithLogger(current.logger),
	}
	if scoreBrowser {
		opts = append(opts, ingestion.WithRenderer(ingestion.ChromeRenderer(scoreBrowserTimeout)))
	}
	jobText, err := ingestion.NewLoader(opts...).Load(ctx, scoreJob)
	if err != nil {
		return err
	}
	if jobText != "" {
		current.logger.Debug("job description loaded",
			zap.Int("chars", len(jobText)),
			zap.String("preview", logging.Truncate(jobText, 80)))
	}

	if scoreAll {
		return scoreEvery(ctx, jobText)
	}

	v, err := current.activeVersion()
	if err != nil {
		return err
	}
	report := evaluation.Evaluate(v.Document, v.Settings, jobText)
	if current.cfg.Format == config.FormatJSON {
		return writeJSON(report)
	}
	current.printer.PrintReport(fmt.Sprintf("%s (%s)", v.Document.Basics.Name, v.Name), report)
	return nil
}

// scoreEvery evaluates the current version of every unarchived résumé in parallel.
func scoreEvery(ctx context.Context, jobText string) error {
	state := current.store.Snapshot()
	var resumes []types.Resume
	for _, r := range state.Resumes {
		if !r.IsArchived {
			resumes = append(resumes, r)
		}
	}

	results := make([]scoredResume, len(resumes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, r := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, ok := r.FindVersion(r.CurrentVersionID)
			if !ok {
				return fmt.Errorf("resume %s: current version %s not found", r.ID, r.CurrentVersionID)
			}
			results[i] = scoredResume{
				ResumeID:  r.ID,
				Title:     r.Title,
				VersionID: v.ID,
				Report:    evaluation.Evaluate(v.Document, v.Settings, jobText),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if current.cfg.Format == config.FormatJSON {
		return writeJSON(results)
	}
	rows := make([]observability.ScoreRow, len(results))
	for i, res := range results {
		rows[i] = observability.ScoreRow{
			ResumeID: res.ResumeID,
			Title:    res.Title,
			Score:    res.Report.Score,
			Issues:   len(res.Report.Issues),
		}
	}
	current.printer.PrintScoreTable(rows)
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(current.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
