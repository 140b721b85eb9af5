package ops

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ddesk/ddesk/internal/ddev"
	"github.com/ddesk/ddesk/internal/events"
)

// CMSInstall describes the scaffolding step that runs before `ddev
// config` when creating a project from a CMS starter.
type CMSInstall struct {
	// Kind is "composer", "wp", or "download".
	Kind string

	// Package is the composer package (composer), unused for wp, or the
	// archive URL for download.
	Package string
}

// CreateOptions parameterizes CreateProject.
type CreateOptions struct {
	// Path is the directory the project is created in. It is created if
	// it does not exist and must be empty otherwise.
	Path string

	// Name is the ddev project name.
	Name string

	// Type is the ddev project type (php, drupal11, wordpress, ...).
	Type string

	PHPVersion string
	Database   string // type:version, e.g. mariadb:10.11
	Webserver  string
	Docroot    string

	// AutoStart starts the project after configuration. A start failure
	// does not fail the creation.
	AutoStart bool

	// CMS, when set, scaffolds the CMS before `ddev config` runs.
	CMS *CMSInstall
}

// configArgs builds the `ddev config` argument list for the options.
func configArgs(opts CreateOptions) []string {
	args := []string{"config", "--project-name=" + opts.Name, "--create-docroot"}
	if opts.Type != "" {
		args = append(args, "--project-type="+opts.Type)
	}
	if opts.PHPVersion != "" {
		args = append(args, "--php-version="+opts.PHPVersion)
	}
	if opts.Database != "" {
		args = append(args, "--database="+opts.Database)
	}
	if opts.Webserver != "" {
		args = append(args, "--webserver-type="+opts.Webserver)
	}
	if opts.Docroot != "" {
		args = append(args, "--docroot="+opts.Docroot)
	}
	return args
}

// CreateProject creates a new ddev project as one cancellable chained
// task: optional CMS scaffolding, then `ddev config`, then an optional
// `ddev start`. Returns the task id.
func (s *Service) CreateProject(opts CreateOptions) string {
	const command = "create-project"

	id := s.reg.NextID()
	s.reg.Create(id, command, opts.Name)

	s.em.Emit(events.CommandStatus{
		Command: command,
		Project: opts.Name,
		Status:  events.StatusStarted,
		Message: "Creating project " + opts.Name,
		TaskID:  id,
	})

	go func() {
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			s.finishError(id, command, opts.Name, "Failed to create project directory: "+err.Error())
			return
		}

		if s.reg.IsCancelled(id) {
			return
		}

		if opts.CMS != nil {
			s.em.Emit(events.CommandOutput{
				Line:   "Installing CMS files...",
				Stream: events.StreamStdout,
			})
			switch s.installCMS(id, command, opts) {
			case ddev.StepCancelled:
				return
			case ddev.StepFailed:
				s.finishError(id, command, opts.Name, "Failed to install CMS files")
				return
			}
			if s.reg.IsCancelled(id) {
				return
			}
		}

		s.em.Emit(events.CommandOutput{
			Line:   "Configuring project...",
			Stream: events.StreamStdout,
		})
		switch s.run.RunStep(id, command, opts.Name, s.run.Bin(), configArgs(opts), opts.Path) {
		case ddev.StepCancelled:
			return
		case ddev.StepFailed:
			s.finishError(id, command, opts.Name, "Failed to configure project")
			return
		}

		if opts.AutoStart {
			if s.reg.IsCancelled(id) {
				return
			}
			s.em.Emit(events.CommandOutput{
				Line:   "Starting project...",
				Stream: events.StreamStdout,
			})
			// A failed start leaves a usable, configured project behind,
			// so it does not fail the creation.
			switch s.run.RunStep(id, command, opts.Name, s.run.Bin(), []string{"start", "-y"}, opts.Path) {
			case ddev.StepCancelled:
				return
			case ddev.StepFailed:
				s.em.Emit(events.CommandOutput{
					Line:   "Project created but failed to start; run ddev start manually",
					Stream: events.StreamStderr,
				})
			}
		}

		s.finishOK(id, command, opts.Name, "Project created successfully")
	}()

	return id
}

// installCMS runs the scaffolding step for the selected CMS inside the
// project directory.
func (s *Service) installCMS(id, command string, opts CreateOptions) ddev.StepResult {
	switch opts.CMS.Kind {
	case "composer":
		return s.run.RunStep(id, command, opts.Name, "composer",
			[]string{"create-project", opts.CMS.Package, ".", "--no-interaction"}, opts.Path)

	case "wp":
		return s.run.RunStep(id, command, opts.Name, "wp",
			[]string{"core", "download"}, opts.Path)

	case "download":
		// No composer or wp-cli on this machine: fetch and unpack an
		// archive instead.
		zip := filepath.Join(opts.Path, "cms.zip")
		if res := s.run.RunStep(id, command, opts.Name, "curl",
			[]string{"-L", "-o", zip, opts.CMS.Package}, opts.Path); res != ddev.StepOK {
			return res
		}
		if s.reg.IsCancelled(id) {
			return ddev.StepCancelled
		}
		if res := s.run.RunStep(id, command, opts.Name, "unzip",
			[]string{"-q", "cms.zip"}, opts.Path); res != ddev.StepOK {
			return res
		}
		if s.reg.IsCancelled(id) {
			return ddev.StepCancelled
		}
		// Archives unpack into a single top-level directory; hoist its
		// contents and drop the archive.
		return s.run.RunStep(id, command, opts.Name, "sh",
			[]string{"-c", "d=$(find . -maxdepth 1 -mindepth 1 -type d | head -1) && mv \"$d\"/* . && rmdir \"$d\"; rm -f cms.zip"},
			opts.Path)

	default:
		return ddev.StepFailed
	}
}

// CheckFolderEmpty reports whether dir is missing or contains no
// entries. Creation refuses a non-empty target.
func CheckFolderEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}

// CheckComposerInstalled reports whether composer is reachable in the
// runner's environment.
func (s *Service) CheckComposerInstalled(ctx context.Context) bool {
	_, err := s.run.OutputBin(ctx, "composer", "--version")
	return err == nil
}

// CheckWPCLIInstalled reports whether wp-cli is reachable in the
// runner's environment.
func (s *Service) CheckWPCLIInstalled(ctx context.Context) bool {
	_, err := s.run.OutputBin(ctx, "wp", "--version")
	return err == nil
}
