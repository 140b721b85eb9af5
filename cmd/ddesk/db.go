package main

import (
	"github.com/spf13/cobra"

	"github.com/ddesk/ddesk/internal/ops"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Import and export project databases",
}

var dbImportFlags struct {
	database string
	noDrop   bool
}

var dbImportCmd = &cobra.Command{
	Use:   "import <project> <file>",
	Short: "Import a database dump",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.ImportDB(args[0], ops.ImportDBOptions{
			File:     args[1],
			Database: dbImportFlags.database,
			NoDrop:   dbImportFlags.noDrop,
		})
		<-done
		return nil
	},
}

var dbExportFlags struct {
	database    string
	compression string
}

var dbExportCmd = &cobra.Command{
	Use:   "export <project> <file>",
	Short: "Export a database to a dump file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done := consoleService()
		svc.ExportDB(args[0], ops.ExportDBOptions{
			File:        args[1],
			Database:    dbExportFlags.database,
			Compression: dbExportFlags.compression,
		})
		<-done
		return nil
	},
}

func init() {
	dbImportCmd.Flags().StringVar(&dbImportFlags.database, "database", "", "Target database name")
	dbImportCmd.Flags().BoolVar(&dbImportFlags.noDrop, "no-drop", false, "Keep existing tables")

	dbExportCmd.Flags().StringVar(&dbExportFlags.database, "database", "", "Source database name")
	dbExportCmd.Flags().StringVar(&dbExportFlags.compression, "compression", "", "Compression: bzip2 or xz (default gzip)")

	dbCmd.AddCommand(dbImportCmd, dbExportCmd)
	rootCmd.AddCommand(dbCmd)
}
