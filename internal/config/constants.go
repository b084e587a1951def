// Package config holds the export defaults and the per-run options
// resolved from constants, config file, and command-line flags.
package config

// Filter defaults matching the board conventions this tool was built for.
const (
	DefaultListName        = "Project List"
	DefaultReportableLabel = "Reportable (black_dark)"
	DefaultReportTitle     = "Transaction Management and Middleware"
)

// Application settings.
const (
	AppName        = "trellomd"
	HistoryDBName  = "history.db"
	ConfigFileName = "trellomd.yaml"
)

// Time layouts.
const (
	// OutputTimeLayout names the default output file, e.g.
	// trello_export_20260830_153000.md.
	OutputTimeLayout = "20060102_150405"
	// MetadataTimeLayout is the generation timestamp in report headers.
	MetadataTimeLayout = "2006-01-02 15:04:05"
)
