package exporter

import (
	"os"
	"os/user"
	"runtime"
)

// SystemStatus describes the environment exports run in.
// It is meant for troubleshooting output directories and permissions.
type SystemStatus struct {
	ReportsDir  string `json:"reports_dir"`
	FallbackDir string `json:"fallback_dir"`
	DirExists   bool   `json:"dir_exists"`
	DirWritable bool   `json:"dir_writable"`
	GoVersion   string `json:"go_version"`
	User        string `json:"user"`
	CurrentDir  string `json:"current_dir"`
	Error       string `json:"error,omitempty"`
}

// CheckSystemStatus inspects the reports directory without creating it.
func (e *Exporter) CheckSystemStatus() SystemStatus {
	status := SystemStatus{
		ReportsDir:  e.cfg.ReportsDir,
		FallbackDir: e.cfg.FallbackDir,
		GoVersion:   runtime.Version(),
		User:        currentUser(),
	}

	if wd, err := os.Getwd(); err == nil {
		status.CurrentDir = wd
	} else {
		status.Error = err.Error()
	}

	info, err := os.Stat(e.cfg.ReportsDir)
	switch {
	case err == nil && info.IsDir():
		status.DirExists = true
		if werr := checkWritable(e.cfg.ReportsDir); werr != nil {
			status.Error = werr.Error()
		} else {
			status.DirWritable = true
		}
	case err == nil:
		status.Error = e.cfg.ReportsDir + " is not a directory"
	case !os.IsNotExist(err):
		status.Error = err.Error()
	}

	e.logger.Debug("system status",
		"reports_dir", status.ReportsDir,
		"exists", status.DirExists,
		"writable", status.DirWritable,
	)
	return status
}

// checkWritable tries to create and remove a file in an existing directory.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".seoreport-write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()       //nolint:errcheck // Check file is removed right away
	_ = os.Remove(name) //nolint:errcheck // Best effort cleanup
	return nil
}

func currentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "unknown"
}
