package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "seoreport"

	// DefaultFormat is the output format used when none is given.
	DefaultFormat = "pdf"

	// DefaultPageSize matches the page size of the printed reports.
	DefaultPageSize = "Letter"

	// DefaultPlanName is shown on the cover page.
	DefaultPlanName = "Basic Plan - SEO Analysis"

	// DefaultBatchSize of 4 concurrent exports keeps PDF layout, which is
	// CPU bound, from starving the rest of the machine.
	DefaultBatchSize = 4

	// reportsSubdir is the directory under the XDG data dir holding reports.
	reportsSubdir = "reports"
)

// Supported values for Format and PageSize.
var (
	formats   = []string{"pdf", "markdown", "md", "text", "txt", "json"}
	pageSizes = []string{"letter", "legal", "a3", "a4", "a5"}
)

// Config holds all configuration options for seoreport.
// This struct is designed to be populated from the config file and CLI flags
// and passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. Per-site overrides live in SiteConfigs because they are
// keyed by host and only exist when a config file is loaded.
type Config struct {
	// ReportsDir is the directory where reports are written when the
	// output path has no directory component.
	ReportsDir string `yaml:"reportsDir,omitempty"`

	// FallbackDir is used when ReportsDir cannot be created or written.
	FallbackDir string `yaml:"fallbackDir,omitempty"`

	// Format is the output format: pdf, markdown, text or json.
	Format string `yaml:"format,omitempty"`

	// PageSize is the PDF page size: Letter, Legal, A3, A4 or A5.
	PageSize string `yaml:"pageSize,omitempty"`

	// PlanName is the plan shown on the cover page.
	PlanName string `yaml:"planName,omitempty"`

	// Title overrides the document title when set.
	Title string `yaml:"title,omitempty"`

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool `yaml:"verbose,omitempty"`

	// BatchSize is the number of concurrent exports when several results
	// files are given.
	BatchSize int `yaml:"batchSize,omitempty"`

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home
	// directory and the XDG config directory.
	ConfigFilePath string `yaml:"-"`

	// SiteConfigs holds per-site overrides loaded from the config file.
	SiteConfigs *File `yaml:"-"`
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., directories, plan
// name). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ReportsDir:  DefaultReportsDir(),
		FallbackDir: os.TempDir(),
		Format:      DefaultFormat,
		PageSize:    DefaultPageSize,
		PlanName:    DefaultPlanName,
		BatchSize:   DefaultBatchSize,
	}
}

// DefaultReportsDir returns the default reports directory.
// On Linux: ~/.local/share/seoreport/reports
func DefaultReportsDir() string {
	return filepath.Join(XDGDataDir(), reportsSubdir)
}

// XDGDataDir returns the XDG data directory for seoreport.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/seoreport
// On macOS: ~/Library/Application Support/seoreport
// On Windows: %LOCALAPPDATA%\seoreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for seoreport.
// On Linux: ~/.config/seoreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Site returns the effective settings for a host: per-site overrides from
// the config file applied on top of the global settings.
func (c *Config) Site(host string) SiteConfig {
	site := SiteConfig{
		PlanName: c.PlanName,
		Title:    c.Title,
		PageSize: c.PageSize,
	}
	if c.SiteConfigs == nil {
		return site
	}
	return site.merge(c.SiteConfigs.GetSiteConfig(host))
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any export begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return ErrNoReportsDir
	}

	if c.FallbackDir == "" {
		return ErrNoFallbackDir
	}

	if !contains(formats, c.Format) {
		return ErrInvalidFormat
	}

	if !contains(pageSizes, c.PageSize) {
		return ErrInvalidPageSize
	}

	if err := c.validateSites(); err != nil {
		return err
	}

	// BatchSize must be positive; zero would mean no exports run
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	return nil
}

// validateSites checks the page sizes of the defaults and per-site
// overrides, so a bad override fails here instead of during layout.
// Hosts are checked in sorted order to keep the reported host stable.
func (c *Config) validateSites() error {
	if c.SiteConfigs == nil {
		return nil
	}

	if size := c.SiteConfigs.Defaults.PageSize; size != "" && !contains(pageSizes, size) {
		return fmt.Errorf("defaults: %w (got %q)", ErrInvalidPageSize, size)
	}

	for _, host := range slices.Sorted(maps.Keys(c.SiteConfigs.Sites)) {
		size := c.SiteConfigs.Sites[host].PageSize
		if size != "" && !contains(pageSizes, size) {
			return fmt.Errorf("site %s: %w (got %q)", host, ErrInvalidPageSize, size)
		}
	}
	return nil
}

// contains reports whether v case-insensitively matches one of the values.
func contains(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
