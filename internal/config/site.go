package config

import (
	"net/url"
	"strings"
)

// SiteConfig holds report settings for a single analyzed site.
// This allows customizing the report for individual clients.
type SiteConfig struct {
	// PlanName overrides the plan shown on the cover page.
	PlanName string `yaml:"planName,omitempty"`

	// Title overrides the document title.
	Title string `yaml:"title,omitempty"`

	// PageSize overrides the PDF page size.
	PageSize string `yaml:"pageSize,omitempty"`
}

// merge returns s with every non-empty field of override applied.
func (s SiteConfig) merge(override SiteConfig) SiteConfig {
	if override.PlanName != "" {
		s.PlanName = override.PlanName
	}
	if override.Title != "" {
		s.Title = override.Title
	}
	if override.PageSize != "" {
		s.PageSize = override.PageSize
	}
	return s
}

// File represents the structure of the .seoreport configuration file.
type File struct {
	// Config holds the global settings. Its fields are inlined so the file
	// reads as a flat list of options.
	Config `yaml:",inline"`

	// Sites maps hosts to their site-specific settings.
	// Keys are host names without scheme or port (e.g., "example.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains site settings applied to all sites
	// unless overridden in the site-specific configuration.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the configuration for a host.
// The host may also be given as a full URL. It merges the site-specific
// configuration with defaults.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	result := cf.Defaults

	if site, ok := cf.Sites[HostOf(host)]; ok {
		result = result.merge(site)
	}

	return result
}

// HostOf extracts the lowercase host name from a URL or bare host.
func HostOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "//" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
