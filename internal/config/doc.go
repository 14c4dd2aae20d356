// Package config provides configuration structures and utilities for seoreport.
// It defines where reports are written, the fallback location used when that
// directory is not writable, the output format and page size, and per-site
// overrides of the cover page.
package config
