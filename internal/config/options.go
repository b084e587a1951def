package config

// Options carries everything one export run needs. Each run gets its own
// value; nothing here is shared across invocations.
type Options struct {
	CSVPath         string
	OutputPath      string
	PDFPath         string
	ListName        string
	ReportableLabel string
	Title           string
	IncludeArchived bool
	IncludeMetadata bool
	KeepCSV         bool
}

// DefaultOptions returns the built-in defaults. Metadata is on by default,
// matching the original exporter.
func DefaultOptions() Options {
	return Options{
		ListName:        DefaultListName,
		ReportableLabel: DefaultReportableLabel,
		Title:           DefaultReportTitle,
		IncludeMetadata: true,
	}
}
