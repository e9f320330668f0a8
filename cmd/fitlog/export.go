// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportType   string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export fitness data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export grouped by activity type (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --type, -t     Filter by activity type (markdown only)
  --since        Only include activities since this date (markdown only)

EXAMPLES:

  fitlog export json                        # Export all data as JSON
  fitlog export json -o backup.json         # Save to file
  fitlog export yaml                        # Export as YAML
  fitlog export markdown --type running     # Export runs as Markdown
  fitlog export markdown --since 2024-01-01 # Export 2024 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(store)
		case "yaml":
			data, err = storage.ExportYAML(store)
		case "markdown":
			var activityType *models.ActivityType
			if exportType != "" {
				if !models.IsValidActivityType(exportType) {
					return fmt.Errorf("unknown activity type: %s", exportType)
				}
				at := models.ActivityType(exportType)
				activityType = &at
			}
			var since *time.Time
			if exportSince != "" {
				t, perr := parseTime(exportSince)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			md, merr := storage.ExportMarkdown(store, activityType, since)
			if merr != nil {
				return fmt.Errorf("export failed: %w", merr)
			}
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fitness data from JSON",
	Long: `Import fitness data from a JSON backup file.

This imports activities and goals from a previously exported JSON file.
Records keep their original IDs; importing the same file twice
overwrites rather than duplicates.

EXAMPLES:

  fitlog import backup.json                 # Import from file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		summary, err := storage.ImportJSON(store, data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d activities and %d goals from %s",
			summary.Activities, summary.Goals, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportType, "type", "t", "", "filter by activity type (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include activities since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
