package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ddesk/ddesk/internal/ops"
)

var createFlags struct {
	path       string
	ptype      string
	phpVersion string
	database   string
	webserver  string
	docroot    string
	start      bool
	cms        string
	cmsPackage string
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new DDEV project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path := createFlags.path
		if path == "" {
			path = name
		}

		empty, err := ops.CheckFolderEmpty(path)
		if err != nil {
			return err
		}
		if !empty {
			return fmt.Errorf("directory %s is not empty", path)
		}

		opts := ops.CreateOptions{
			Path:       path,
			Name:       name,
			Type:       createFlags.ptype,
			PHPVersion: createFlags.phpVersion,
			Database:   createFlags.database,
			Webserver:  createFlags.webserver,
			Docroot:    createFlags.docroot,
			AutoStart:  createFlags.start,
		}
		if createFlags.cms != "" {
			opts.CMS = &ops.CMSInstall{Kind: createFlags.cms, Package: createFlags.cmsPackage}
		}

		svc, done := consoleService()
		svc.CreateProject(opts)
		<-done
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createFlags.path, "path", "", "Directory to create the project in (default: the project name)")
	createCmd.Flags().StringVar(&createFlags.ptype, "type", "php", "Project type (php, drupal11, wordpress, ...)")
	createCmd.Flags().StringVar(&createFlags.phpVersion, "php", "", "PHP version")
	createCmd.Flags().StringVar(&createFlags.database, "database", "", "Database type:version, e.g. mariadb:10.11")
	createCmd.Flags().StringVar(&createFlags.webserver, "webserver", "", "Webserver type")
	createCmd.Flags().StringVar(&createFlags.docroot, "docroot", "", "Document root relative to the project directory")
	createCmd.Flags().BoolVar(&createFlags.start, "start", false, "Start the project after creation")
	createCmd.Flags().StringVar(&createFlags.cms, "cms", "", "CMS install step: composer, wp, or download")
	createCmd.Flags().StringVar(&createFlags.cmsPackage, "cms-package", "", "Composer package or archive URL for --cms")

	rootCmd.AddCommand(createCmd)
}
