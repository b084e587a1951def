// Command trellomd exports Trello cards from a CSV dump to a markdown
// report grouped by team.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/trellomd/internal/config"
	"github.com/akyairhashvil/trellomd/internal/exporter"
	"github.com/akyairhashvil/trellomd/internal/history"
	"github.com/akyairhashvil/trellomd/internal/tui"
	"github.com/akyairhashvil/trellomd/internal/util"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "trellomd <csv-file>",
		Short:         "Export Trello cards from a CSV dump to a markdown report",
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}
			preview, _ := cmd.Flags().GetBool("preview")
			return run(cmd, opts, preview)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output markdown file (default trello_export_<timestamp>.md)")
	cmd.Flags().StringP("list-name", "l", config.DefaultListName, "name of the list to filter by")
	cmd.Flags().String("label", config.DefaultReportableLabel, "label to filter by")
	cmd.Flags().String("title", config.DefaultReportTitle, "report title")
	cmd.Flags().Bool("include-archived", false, "include archived cards")
	cmd.Flags().Bool("keep-csv", false, "keep the input CSV file after processing")
	cmd.Flags().Bool("no-metadata", false, "omit the generation timestamp from the report")
	cmd.Flags().Bool("pdf", false, "also write the report as a PDF next to the markdown file")
	cmd.Flags().Bool("preview", false, "review the report interactively before writing")
	cmd.Flags().String("config", "", "path to a trellomd.yaml config file")
	return cmd
}

// buildOptions resolves constants, then the config file, then flags, in
// that order. Flags only override the file when set explicitly.
func buildOptions(cmd *cobra.Command, csvPath string) (config.Options, error) {
	fl := cmd.Flags()
	opts := config.DefaultOptions()

	outputDir := ""
	configPath, _ := fl.GetString("config")
	if configPath == "" {
		if _, err := os.Stat(config.ConfigFileName); err == nil {
			configPath = config.ConfigFileName
		}
	}
	if configPath != "" {
		file, err := config.LoadFile(configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = file.Apply(opts)
		outputDir = file.OutputDir
	}

	if fl.Changed("list-name") {
		opts.ListName, _ = fl.GetString("list-name")
	}
	if fl.Changed("label") {
		opts.ReportableLabel, _ = fl.GetString("label")
	}
	if fl.Changed("title") {
		opts.Title, _ = fl.GetString("title")
	}
	if keep, _ := fl.GetBool("keep-csv"); keep {
		opts.KeepCSV = true
	}
	opts.CSVPath = csvPath
	opts.IncludeArchived, _ = fl.GetBool("include-archived")
	noMetadata, _ := fl.GetBool("no-metadata")
	opts.IncludeMetadata = !noMetadata

	opts.OutputPath, _ = fl.GetString("output")
	if opts.OutputPath == "" {
		opts.OutputPath = filepath.Join(outputDir, defaultOutputName(time.Now()))
	}
	if pdf, _ := fl.GetBool("pdf"); pdf {
		opts.PDFPath = pdfPath(opts.OutputPath)
	}
	return opts, nil
}

// defaultOutputName follows the original exporter's naming scheme.
func defaultOutputName(now time.Time) string {
	return fmt.Sprintf("trello_export_%s.md", now.Format(config.OutputTimeLayout))
}

func pdfPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".pdf"
}

// openHistory opens the export journal. A broken journal never blocks an
// export; it degrades to nil with a logged warning.
func openHistory() *history.Store {
	dir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		util.LogError("creating data dir", err)
		return nil
	}
	store, err := history.Open(filepath.Join(dir, config.HistoryDBName))
	if err != nil {
		util.LogError("opening export history", err)
		return nil
	}
	return store
}

func run(cmd *cobra.Command, opts config.Options, preview bool) error {
	ctx := context.Background()
	var hist exporter.History
	if store := openHistory(); store != nil {
		hist = store
		defer store.Close()
	}

	if preview {
		return runPreview(ctx, cmd, opts, hist)
	}

	res, err := exporter.Run(ctx, opts, hist)
	if errors.Is(err, exporter.ErrNoCards) {
		fmt.Fprintln(cmd.OutOrStdout(), "No cards found matching the criteria.")
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d cards to %s\n", len(res.Cards), res.OutputPath)
	return nil
}

func runPreview(ctx context.Context, cmd *cobra.Command, opts config.Options, hist exporter.History) error {
	res := exporter.Prepare(opts)

	var export tui.ExportFunc
	if len(res.Cards) > 0 {
		export = func() error { return exporter.Commit(ctx, res, opts, hist) }
	}
	model := tui.NewPreviewModel(res.Markdown, len(res.Cards), opts.OutputPath, export)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	preview, ok := final.(tui.PreviewModel)
	if !ok {
		return nil
	}
	switch {
	case preview.Err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", preview.Err)
		return preview.Err
	case preview.Exported:
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d cards to %s\n", len(res.Cards), opts.OutputPath)
		return nil
	case len(res.Cards) == 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No cards found matching the criteria.")
		return exporter.ErrNoCards
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Export aborted; nothing was written.")
		return nil
	}
}
