package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"camodlib/storage"
)

var (
	exportDbPath string
	exportTable  string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a logged trajectory table from a SQLite database to CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := storage.ExportLogData(exportDbPath, exportTable, exportFormat, exportOutput); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Println("Export completed successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportDbPath, "db", "d", "", "Path to the SQLite database (required).")
	_ = exportCmd.MarkFlagRequired("db")

	exportCmd.Flags().StringVarP(&exportTable, "table", "t", "", "Table to export, usually the model name (required).")
	_ = exportCmd.MarkFlagRequired("table")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format (currently only \"csv\").")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (stdout if not specified).")
}
