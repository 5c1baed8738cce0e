package main

import "flag"

// Flags holds all command-line flags
type Flags struct {
	// Commands
	Report       *string
	ToXLSX       *string
	CreateConfig *bool

	// Report options
	Definition  *string
	Output      *string
	Title       *string
	Debug       *bool
	OpenBrowser *bool

	// XLSX options
	Sheet *string

	// Options
	Config *string
	Log    *string

	// Misc
	Version   *bool
	Help      *bool
	ShortHelp *bool
}

// ParseFlags defines and parses all command-line flags
func ParseFlags() *Flags {
	f := &Flags{}

	// Commands
	f.Report = flag.String("report", "", "Generate HTML report from a response export (CSV or XLSX file)")
	f.ToXLSX = flag.String("to-xlsx", "", "Convert a response export to XLSX (input CSV file)")
	f.CreateConfig = flag.Bool("create-config", false, "Create sample config file")

	// Report options
	f.Definition = flag.String("definition", "", "Survey definition file with question text and labels (JSON)")
	f.Output = flag.String("output", "", "Output file path (default: <input>_report.html)")
	f.Title = flag.String("title", "", "Report title (default: derived from input file name)")
	f.Debug = flag.Bool("debug", false, "Show classification details and input fingerprint in the report")
	f.OpenBrowser = flag.Bool("open", false, "Open generated report in default browser")

	// XLSX options
	f.Sheet = flag.String("sheet", "Responses", "Excel sheet name for XLSX output")

	// Options
	f.Config = flag.String("config", "config.yaml", "Configuration file path")
	f.Log = flag.String("log", "", "Audit log file (overrides config)")

	// Misc
	f.Version = flag.Bool("version", false, "Show version information")
	f.Help = flag.Bool("help", false, "Show detailed help with examples")
	f.ShortHelp = flag.Bool("h", false, "Show brief help (commands and options)")

	flag.Parse()

	return f
}
