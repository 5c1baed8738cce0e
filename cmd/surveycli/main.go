package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/queuebridge/surveyview/cmd/surveycli/commands"
	"github.com/queuebridge/surveyview/pkg/audit"
)

func main() {
	ctx := context.Background()

	// Parse flags
	flags := ParseFlags()

	// Handle version
	if *flags.Version {
		PrintVersion()
		os.Exit(0)
	}

	// Handle help
	if *flags.Help {
		PrintHelp()
		os.Exit(0)
	}
	if *flags.ShortHelp {
		PrintShortHelp()
		os.Exit(0)
	}

	// Handle config creation
	if *flags.CreateConfig {
		createConfigTemplate()
		return
	}

	// Load configuration
	config, err := LoadConfig(*flags.Config)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		fatal("Invalid config: %v", err)
	}

	// Build audit logger
	logger, err := buildLogger(config, flags)
	if err != nil {
		fatal("Failed to set up audit logging: %v", err)
	}
	defer logger.Close()

	// Route commands
	var cmdErr error

	if *flags.Report != "" {
		cmdErr = commands.GenerateReport(ctx, logger, commands.ReportOptions{
			InputFile:      *flags.Report,
			DefinitionFile: firstNonEmpty(*flags.Definition, config.Report.Definition),
			OutputFile:     determineOutputFile(*flags.Output, *flags.Report, "_report.html"),
			Title:          firstNonEmpty(*flags.Title, config.Report.Title),
			Debug:          *flags.Debug || config.Report.Debug,
			OpenBrowser:    *flags.OpenBrowser,
		})
	} else if *flags.ToXLSX != "" {
		cmdErr = commands.ConvertResponsesToXLSX(ctx, logger, commands.XLSXOptions{
			InputFile:  *flags.ToXLSX,
			OutputFile: determineOutputFile(*flags.Output, *flags.ToXLSX, ".xlsx"),
			SheetName:  *flags.Sheet,
		})
	}

	// Handle errors
	if cmdErr != nil {
		fatal("Command failed: %v", cmdErr)
	}

	// If no command was specified, show help
	if *flags.Report == "" && *flags.ToXLSX == "" {
		PrintShortHelp()
		os.Exit(1)
	}
}

// createConfigTemplate creates a sample configuration file
func createConfigTemplate() {
	config := CreateSampleConfig()

	if err := SaveConfig("config.yaml", config); err != nil {
		fatal("Failed to save config: %v", err)
	}

	fmt.Println("Created sample config: config.yaml")
	fmt.Println("Edit the file and run:")
	fmt.Println("  surveycli --report responses.csv --config config.yaml")
}

// buildLogger assembles the audit logger from config and flags. With
// auditing off it returns a NullLogger so callers never branch.
func buildLogger(config *Config, flags *Flags) (audit.Logger, error) {
	level := audit.ParseLevel(config.Audit.Level)

	var appenders []audit.Appender

	logFile := *flags.Log
	if logFile == "" && config.Audit.Enabled {
		logFile = config.Audit.File
	}
	if logFile != "" {
		fa, err := audit.NewFileAppender(audit.FileAppenderConfig{
			FilePath:   logFile,
			MaxSize:    config.Audit.MaxSize,
			Level:      level,
			FormatJSON: true,
		})
		if err != nil {
			return nil, err
		}
		appenders = append(appenders, fa)
	}

	if config.Audit.Enabled && config.Audit.Database != "" {
		da, err := audit.NewSQLiteAppender(config.Audit.Database, level)
		if err != nil {
			return nil, err
		}
		appenders = append(appenders, da)
	}

	if len(appenders) == 0 {
		return audit.NewNullLogger(), nil
	}
	return audit.NewLogger(audit.LoggerConfig{
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: audit logging: %v\n", err)
		},
	}, appenders...), nil
}

// determineOutputFile derives the output path from the input name when
// --output is not given: input basename plus suffix.
func determineOutputFile(output, inputFile, suffix string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	// Strip the format extension under a compression extension too.
	if ext := filepath.Ext(base); ext == ".csv" || ext == ".xlsx" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + suffix
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// fatal prints error and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
