// Package model defines the core data structures used throughout seoreport.
//
// This package contains the following main types:
//   - Results: The raw, schemaless SEO analysis result with tolerant access
//   - Value: A single looked-up value with default-substituting accessors
//   - Issue: Tagged identifier of a known SEO issue and its catalog entry
//   - Summary: Severity counters, overall status and prioritized improvements
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The classifier, the document assembler and the report writers
// all need these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
