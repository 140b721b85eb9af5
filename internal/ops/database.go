package ops

// ImportDBOptions parameterizes a database import.
type ImportDBOptions struct {
	// File is the dump to import. ddev detects compression itself.
	File string

	// Database is the target database name; empty means the default db.
	Database string

	// NoDrop keeps existing tables instead of dropping them first.
	NoDrop bool
}

func importDBArgs(project string, opts ImportDBOptions) []string {
	args := []string{"import-db", "--file=" + opts.File}
	if opts.Database != "" {
		args = append(args, "--database="+opts.Database)
	}
	if opts.NoDrop {
		args = append(args, "--no-drop")
	}
	return append(args, project)
}

// ImportDB imports a database dump into a project as a cancellable
// task. Returns the task id.
func (s *Service) ImportDB(project string, opts ImportDBOptions) string {
	return s.run.Stream("import-db", project, importDBArgs(project, opts)...)
}

// ExportDBOptions parameterizes a database export.
type ExportDBOptions struct {
	// File is the path the dump is written to.
	File string

	// Database is the source database name; empty means the default db.
	Database string

	// Compression is "", "bzip2", or "xz". Empty uses ddev's default
	// (gzip).
	Compression string
}

func exportDBArgs(project string, opts ExportDBOptions) []string {
	args := []string{"export-db", "--file=" + opts.File}
	if opts.Database != "" {
		args = append(args, "--database="+opts.Database)
	}
	switch opts.Compression {
	case "bzip2":
		args = append(args, "--bzip2")
	case "xz":
		args = append(args, "--xz")
	}
	return append(args, project)
}

// ExportDB exports a project's database to a file as a cancellable
// task. Returns the task id.
func (s *Service) ExportDB(project string, opts ExportDBOptions) string {
	return s.run.Stream("export-db", project, exportDBArgs(project, opts)...)
}
