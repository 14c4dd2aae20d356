// Package document assembles an SEO report as an ordered sequence of
// content blocks grouped into named sections.
//
// The package knows nothing about pagination or typography. A Document is a
// plain list of headings, paragraphs, bullets, spacers and tables that the
// writers in the report package lay out as PDF, Markdown, text or JSON.
//
// Sections are built in a fixed order:
//   - Cover: title, analyzed URL, date and plan name
//   - Executive summary: status and severity counters
//   - Detailed metrics: technical SEO, meta data, performance and mobile tables
//   - Strengths: positive signals found in the results
//   - Action plan: one entry per prioritized improvement
//   - Next steps: immediate actions and the mid-term plan
//
// Every section builder can be called on its own. Field formatting failures
// are contained to the field and replaced with a placeholder; only a failure
// that escapes a whole section aborts the assembly.
package document
