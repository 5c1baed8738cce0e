// Package commands implements the surveycli subcommands.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/queuebridge/surveyview/pkg/audit"
	"github.com/queuebridge/surveyview/pkg/survey/definition"
	"github.com/queuebridge/surveyview/pkg/survey/question"
	"github.com/queuebridge/surveyview/pkg/survey/report"
	"github.com/queuebridge/surveyview/pkg/survey/table"
)

// ReportOptions holds options for report generation
type ReportOptions struct {
	InputFile      string
	DefinitionFile string // optional survey definition (JSON)
	OutputFile     string
	Title          string
	Debug          bool
	OpenBrowser    bool
}

// GenerateReport runs the full pipeline: load the export, parse the
// optional definition, group and classify the question columns, render
// the HTML and write it in one shot.
func GenerateReport(ctx context.Context, logger audit.Logger, opts ReportOptions) error {
	start := time.Now()

	// Load responses
	tbl, err := table.Load(opts.InputFile)
	if err != nil {
		logger.Log(ctx, audit.NewEntry(audit.OpLoad, audit.StatusFailure).
			WithSource(opts.InputFile).
			WithError(err))
		return fmt.Errorf("failed to load responses: %w", err)
	}
	logger.Log(ctx, audit.NewEntry(audit.OpLoad, audit.StatusSuccess).
		WithSource(opts.InputFile).
		WithFingerprint(tbl.Fingerprint).
		WithRecords(len(tbl.Rows)))
	for _, w := range tbl.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}

	// Parse survey definition. Failure here degrades to heuristics
	// instead of aborting: the report is still useful without labels.
	def := definition.Empty()
	if opts.DefinitionFile != "" {
		parsed, err := definition.Load(opts.DefinitionFile)
		if err != nil {
			fmt.Printf("  Warning: definition unavailable, using heuristics: %v\n", err)
			logger.Log(ctx, audit.NewEntry(audit.OpParseDefinition, audit.StatusFailure).
				WithSource(opts.DefinitionFile).
				WithError(err))
		} else {
			def = parsed
			logger.Log(ctx, audit.NewEntry(audit.OpParseDefinition, audit.StatusSuccess).
				WithSource(opts.DefinitionFile).
				WithQuestions(len(def.Questions)))
		}
	}

	// Group and classify question columns
	groups := question.GroupColumns(tbl.QuestionColumns())
	question.Classify(groups, def.DeclaredArchetype, tbl.Values)
	logger.Log(ctx, audit.NewEntry(audit.OpClassify, audit.StatusSuccess).
		WithSource(opts.InputFile).
		WithQuestions(len(groups)))

	// Render
	title := opts.Title
	if title == "" {
		title = defaultTitle(opts.InputFile)
	}
	html, sum := report.Render(tbl, groups, def, report.Options{
		Title:       title,
		Debug:       opts.Debug,
		GeneratedAt: time.Now(),
		SourceName:  filepath.Base(opts.InputFile),
		Fingerprint: tbl.Fingerprint,
	})
	logger.Log(ctx, audit.NewEntry(audit.OpRender, audit.StatusSuccess).
		WithSource(opts.InputFile).
		WithRecords(sum.Respondents).
		WithQuestions(sum.Questions))

	// Write output in a single operation
	if err := os.WriteFile(opts.OutputFile, []byte(html), 0o644); err != nil {
		logger.Log(ctx, audit.NewEntry(audit.OpWrite, audit.StatusFailure).
			WithOutput(opts.OutputFile).
			WithError(err))
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Log(ctx, audit.NewEntry(audit.OpWrite, audit.StatusSuccess).
		WithSource(opts.InputFile).
		WithOutput(opts.OutputFile).
		WithFingerprint(tbl.Fingerprint).
		WithRecords(sum.Respondents).
		WithQuestions(sum.Questions).
		WithDuration(time.Since(start)))

	fmt.Printf("Report: %s\n", opts.OutputFile)
	fmt.Printf("  Respondents: %d\n", sum.Respondents)
	fmt.Printf("  Questions:   %d\n", sum.Questions)
	if sum.Suppressed > 0 {
		fmt.Printf("  Hidden:      %d empty blocks\n", sum.Suppressed)
	}

	if opts.OpenBrowser {
		openInBrowser(opts.OutputFile)
	}
	return nil
}

// defaultTitle derives a report title from the input file name.
func defaultTitle(inputFile string) string {
	base := filepath.Base(inputFile)
	for ext := filepath.Ext(base); ext != ""; ext = filepath.Ext(base) {
		base = base[:len(base)-len(ext)]
	}
	if base == "" {
		return "Survey Report"
	}
	return base + " - Survey Report"
}

// openInBrowser attempts to open a file in the default system browser
func openInBrowser(filePath string) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}
	url := "file://" + absPath

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("  (could not open browser: %v)\n", err)
		fmt.Printf("  Open manually: %s\n", url)
	}
}
