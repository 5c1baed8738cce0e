package main

import "fmt"

const version = "1.0.0"

// PrintVersion prints version information
func PrintVersion() {
	fmt.Printf("surveycli version %s\n", version)
	fmt.Println("SurveyView - survey response report generator")
	fmt.Println("https://github.com/queuebridge/surveyview")
}

// PrintHelp prints comprehensive help information
func PrintHelp() {
	fmt.Println("SurveyView CLI - render survey response exports as HTML reports")
	fmt.Printf("Version: %s\n\n", version)

	fmt.Println("USAGE:")
	fmt.Println("  surveycli [command] [options]")
	fmt.Println()

	fmt.Println("COMMANDS:")
	fmt.Println()

	fmt.Println("  Report Generation:")
	fmt.Println("    --report <file>            Generate HTML report from response export")
	fmt.Println("                               (CSV or XLSX, optionally .gz/.zst compressed)")
	fmt.Println()

	fmt.Println("  XLSX Operations:")
	fmt.Println("    --to-xlsx <file>           Convert a response export to XLSX")
	fmt.Println()

	fmt.Println("  Configuration:")
	fmt.Println("    --create-config            Create sample config file")
	fmt.Println()

	fmt.Println("OPTIONS:")
	fmt.Println()

	fmt.Println("  Report:")
	fmt.Println("    --definition <file>        Survey definition file (JSON) with question")
	fmt.Println("                               text, declared types and choice labels")
	fmt.Println("    --output <file>            Output file path (default: <input>_report.html)")
	fmt.Println("    --title <text>             Report title")
	fmt.Println("    --debug                    Show classification details and input fingerprint")
	fmt.Println("    --open                     Open generated report in default browser")
	fmt.Println()

	fmt.Println("  XLSX:")
	fmt.Println("    --sheet <name>             Excel sheet name (default: Responses)")
	fmt.Println()

	fmt.Println("  General:")
	fmt.Println("    --config <file>            Configuration file (default: config.yaml)")
	fmt.Println("    --log <file>               Audit log file (overrides config)")
	fmt.Println()

	fmt.Println("  Misc:")
	fmt.Println("    --version                  Show version information")
	fmt.Println("    --help                     Show this help")
	fmt.Println("    -h                         Show brief help")
	fmt.Println()

	fmt.Println("EXAMPLES:")
	fmt.Println()
	fmt.Println("  Generate a report:")
	fmt.Println("    surveycli --report responses.csv")
	fmt.Println()
	fmt.Println("  With a survey definition for real question text and labels:")
	fmt.Println("    surveycli --report responses.csv --definition survey.json")
	fmt.Println()
	fmt.Println("  From a compressed export, opening the result:")
	fmt.Println("    surveycli --report responses.csv.zst --open")
	fmt.Println()
	fmt.Println("  Inspect how questions were classified:")
	fmt.Println("    surveycli --report responses.csv --debug")
	fmt.Println()
	fmt.Println("  Convert an export to a spreadsheet:")
	fmt.Println("    surveycli --to-xlsx responses.csv --output responses.xlsx")
}

// PrintShortHelp prints brief usage
func PrintShortHelp() {
	fmt.Println("surveycli - survey response report generator")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  --report <file>     Generate HTML report from response export")
	fmt.Println("  --to-xlsx <file>    Convert a response export to XLSX")
	fmt.Println("  --create-config     Create sample config file")
	fmt.Println()
	fmt.Println("Common options:")
	fmt.Println("  --definition <file> --output <file> --title <text> --debug --open")
	fmt.Println()
	fmt.Println("Run 'surveycli --help' for the full list with examples.")
}
