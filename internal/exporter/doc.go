// Package exporter writes SEO analysis reports to disk.
//
// An export classifies the results, assembles the document, and renders it
// with the writer for the requested format. The output directory is created
// on demand and a fallback directory is used when it cannot be written.
// Failures are reported as a single *Error whose Kind tells missing input,
// section, layout and verification failures apart.
//
// Design decision: We keep file handling here instead of in the report
// writers so the writers stay pure io.Writer renderers that tests can
// exercise against a bytes.Buffer.
//
// BatchExporter runs several exports concurrently with errgroup, one
// Exporter per job.
package exporter
